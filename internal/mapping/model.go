package mapping

import (
	"time"
)

const DefaultStatus = "Draft"

// Mapping links one source column to one target column.
type Mapping struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	SourceTableID  int       `gorm:"not null;column:source_table_id" json:"source_table_id"`
	SourceColumnID int       `gorm:"not null;column:source_column_id" json:"source_column_id"`
	TargetTableID  int       `gorm:"not null;column:target_table_id" json:"target_table_id"`
	TargetColumnID int       `gorm:"not null;column:target_column_id" json:"target_column_id"`
	ReleaseID      *int      `gorm:"index;column:release_id" json:"release_id"`
	JiraTicket     *string   `gorm:"size:64;column:jira_ticket" json:"jira_ticket"`
	Status         string    `gorm:"size:64;not null;index" json:"status"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatedAt      time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

func (Mapping) TableName() string {
	return "mappings"
}

// MappingInput is the create request as received; every field may be absent.
type MappingInput struct {
	SourceTableID  *int    `json:"source_table_id"`
	SourceColumnID *int    `json:"source_column_id"`
	TargetTableID  *int    `json:"target_table_id"`
	TargetColumnID *int    `json:"target_column_id"`
	ReleaseID      *int    `json:"release_id"`
	JiraTicket     *string `json:"jira_ticket"`
	Status         *string `json:"status"`
	Description    *string `json:"description"`
}

// Validate reports the first missing foreign key, in declaration order, and
// otherwise returns the fields a Store can insert.
func (in MappingInput) Validate() (NewMapping, error) {
	required := []struct {
		name  string
		value *int
	}{
		{"source_table_id", in.SourceTableID},
		{"source_column_id", in.SourceColumnID},
		{"target_table_id", in.TargetTableID},
		{"target_column_id", in.TargetColumnID},
	}
	for _, r := range required {
		if r.value == nil {
			return NewMapping{}, &ValidationError{Field: r.name}
		}
	}

	return NewMapping{
		SourceTableID:  *in.SourceTableID,
		SourceColumnID: *in.SourceColumnID,
		TargetTableID:  *in.TargetTableID,
		TargetColumnID: *in.TargetColumnID,
		ReleaseID:      in.ReleaseID,
		JiraTicket:     in.JiraTicket,
		Status:         in.Status,
		Description:    in.Description,
	}, nil
}

// NewMapping carries validated create fields. Nil Status and Description take
// their defaults.
type NewMapping struct {
	SourceTableID  int
	SourceColumnID int
	TargetTableID  int
	TargetColumnID int
	ReleaseID      *int
	JiraTicket     *string
	Status         *string
	Description    *string
}

func (n NewMapping) record(id int, ts time.Time) Mapping {
	m := Mapping{
		ID:             id,
		SourceTableID:  n.SourceTableID,
		SourceColumnID: n.SourceColumnID,
		TargetTableID:  n.TargetTableID,
		TargetColumnID: n.TargetColumnID,
		ReleaseID:      cloneInt(n.ReleaseID),
		JiraTicket:     cloneString(n.JiraTicket),
		Status:         DefaultStatus,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	if n.Status != nil {
		m.Status = *n.Status
	}
	if n.Description != nil {
		m.Description = *n.Description
	}
	return m
}

// Patch is a partial update. Unset fields are left alone. An explicit null
// clears release_id and jira_ticket; on the other fields it is ignored since
// they cannot be empty.
type Patch struct {
	SourceTableID  Field[int]    `json:"source_table_id"`
	SourceColumnID Field[int]    `json:"source_column_id"`
	TargetTableID  Field[int]    `json:"target_table_id"`
	TargetColumnID Field[int]    `json:"target_column_id"`
	ReleaseID      Field[int]    `json:"release_id"`
	JiraTicket     Field[string] `json:"jira_ticket"`
	Status         Field[string] `json:"status"`
	Description    Field[string] `json:"description"`
}

func (p Patch) apply(m *Mapping) {
	setValue(&m.SourceTableID, p.SourceTableID)
	setValue(&m.SourceColumnID, p.SourceColumnID)
	setValue(&m.TargetTableID, p.TargetTableID)
	setValue(&m.TargetColumnID, p.TargetColumnID)
	setValue(&m.Status, p.Status)
	setValue(&m.Description, p.Description)

	if p.ReleaseID.Set {
		m.ReleaseID = cloneInt(p.ReleaseID.Value)
	}
	if p.JiraTicket.Set {
		m.JiraTicket = cloneString(p.JiraTicket.Value)
	}
}

// Fields lists the JSON names of the supplied fields, for audit entries.
func (p Patch) Fields() []string {
	var out []string
	add := func(name string, set bool) {
		if set {
			out = append(out, name)
		}
	}
	add("source_table_id", p.SourceTableID.Set)
	add("source_column_id", p.SourceColumnID.Set)
	add("target_table_id", p.TargetTableID.Set)
	add("target_column_id", p.TargetColumnID.Set)
	add("release_id", p.ReleaseID.Set)
	add("jira_ticket", p.JiraTicket.Set)
	add("status", p.Status.Set)
	add("description", p.Description.Set)
	return out
}

func setValue[T any](dst *T, f Field[T]) {
	if f.Value != nil {
		*dst = *f.Value
	}
}

// EnrichedMapping adds display names resolved from the entity store. A name
// is omitted when its reference does not resolve.
type EnrichedMapping struct {
	Mapping
	SourceTableName  *string `json:"source_table_name,omitempty"`
	SourceColumnName *string `json:"source_column_name,omitempty"`
	TargetTableName  *string `json:"target_table_name,omitempty"`
	TargetColumnName *string `json:"target_column_name,omitempty"`
	ReleaseName      *string `json:"release_name,omitempty"`
}

// ListFilter selects mappings by release or by status. Only one is applied;
// ReleaseID wins when both are set.
type ListFilter struct {
	ReleaseID *int
	Status    *string
}

// nextTimestamp returns now unless it would not move past prev, in which case
// it steps one microsecond past prev.
func nextTimestamp(now, prev time.Time) time.Time {
	if now.After(prev) {
		return now
	}
	return prev.Add(time.Microsecond)
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func (m Mapping) clone() Mapping {
	m.ReleaseID = cloneInt(m.ReleaseID)
	m.JiraTicket = cloneString(m.JiraTicket)
	return m
}
