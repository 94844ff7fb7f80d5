package assist

import (
	"context"
	"fmt"
	"strings"

	"sttm-catalog-api/internal/catalog"
	"sttm-catalog-api/internal/mapping"

	"google.golang.org/genai"
)

var genaiGenerateContentHook = func(c *genai.Client, ctx context.Context, model string, contents []*genai.Content) (*genai.GenerateContentResponse, error) {
	return c.Models.GenerateContent(ctx, model, contents, nil)
}

type AssistService struct {
	Mappings MappingLookup
	Columns  ColumnLookup
	Client   *genai.Client
	Model    string
}

func (as *AssistService) model() string {
	if m := strings.TrimSpace(as.Model); m != "" {
		return m
	}
	return defaultModel
}

// SuggestDescription asks Gemini for a one-sentence description of the
// mapping. With apply set the suggestion is written back to the mapping.
func (as *AssistService) SuggestDescription(ctx context.Context, id int, apply bool) (*Suggestion, error) {
	if as.Client == nil {
		return nil, ErrAssistDisabled
	}

	m, err := as.Mappings.GetEnrichedMapping(id)
	if err != nil {
		return nil, err
	}

	source, err := as.describeColumn(catalog.Source, m.SourceTableID, m.SourceColumnID, m.SourceTableName, m.SourceColumnName)
	if err != nil {
		return nil, err
	}
	target, err := as.describeColumn(catalog.Target, m.TargetTableID, m.TargetColumnID, m.TargetTableName, m.TargetColumnName)
	if err != nil {
		return nil, err
	}

	genResp, err := genaiGenerateContentHook(as.Client, ctx, as.model(), []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: buildPrompt(*m, source, target)}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generation error: %w", err)
	}

	text := firstText(genResp)
	if text == "" {
		return nil, ErrNoSuggestion
	}

	out := &Suggestion{MappingID: id, Description: text, Model: as.model()}
	if apply {
		if _, err := as.Mappings.UpdateMapping(id, mapping.Patch{Description: mapping.Value(text)}); err != nil {
			return nil, err
		}
		out.Applied = true
	}
	return out, nil
}

func (as *AssistService) describeColumn(ns catalog.Namespace, tableID, columnID int, tableName, columnName *string) (columnInfo, error) {
	info := columnInfo{
		Table:  fmt.Sprintf("#%d", tableID),
		Column: fmt.Sprintf("#%d", columnID),
	}
	if tableName != nil {
		info.Table = *tableName
	}
	if columnName != nil {
		info.Column = *columnName
	}

	cols, err := as.Columns.GetColumns(ns, &tableID)
	if err != nil {
		return info, err
	}
	for _, c := range cols {
		if c.ID == columnID {
			info.DataType = c.DataType
			info.Notes = c.Description
			break
		}
	}
	return info, nil
}

func buildPrompt(m mapping.EnrichedMapping, source, target columnInfo) string {
	var b strings.Builder
	b.WriteString("Write a single short sentence describing this source-to-target data mapping ")
	b.WriteString("for a data catalog. Reply with the sentence only, no quotes or markdown.\n\n")
	fmt.Fprintf(&b, "Source: %s.%s", source.Table, source.Column)
	writeDetails(&b, source)
	fmt.Fprintf(&b, "Target: %s.%s", target.Table, target.Column)
	writeDetails(&b, target)
	if m.Description != "" {
		fmt.Fprintf(&b, "Current description: %s\n", m.Description)
	}
	return b.String()
}

func writeDetails(b *strings.Builder, c columnInfo) {
	if c.DataType != "" {
		fmt.Fprintf(b, " (%s)", c.DataType)
	}
	if c.Notes != "" {
		fmt.Fprintf(b, " - %s", c.Notes)
	}
	b.WriteString("\n")
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && strings.TrimSpace(part.Text) != "" {
				return strings.TrimSpace(part.Text)
			}
		}
	}
	return ""
}
