package assist

import "errors"

const defaultModel = "gemini-2.5-flash"

var (
	ErrAssistDisabled = errors.New("description assistant is not configured")
	ErrNoSuggestion   = errors.New("no response from Gemini")
)

type Suggestion struct {
	MappingID   int    `json:"mapping_id"`
	Description string `json:"description"`
	Model       string `json:"model"`
	Applied     bool   `json:"applied"`
}

// columnInfo is what the prompt needs to know about one side of a mapping.
type columnInfo struct {
	Table    string
	Column   string
	DataType string
	Notes    string
}
