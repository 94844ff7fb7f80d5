package mapping

import (
	"encoding/json"
	"testing"
)

func TestPatch_UnmarshalJSON_TriState(t *testing.T) {
	var p Patch
	body := `{"status":"Updated","release_id":null,"jira_ticket":"STTM-9"}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !p.Status.Set || p.Status.Value == nil || *p.Status.Value != "Updated" {
		t.Fatalf("unexpected status field: %+v", p.Status)
	}
	if !p.ReleaseID.IsNull() {
		t.Fatalf("expected release_id explicit null, got %+v", p.ReleaseID)
	}
	if p.JiraTicket.Value == nil || *p.JiraTicket.Value != "STTM-9" {
		t.Fatalf("unexpected jira_ticket: %+v", p.JiraTicket)
	}
	if p.Description.Set || p.SourceTableID.Set {
		t.Fatal("absent keys must stay unset")
	}
}

func TestPatch_UnmarshalJSON_WrongType(t *testing.T) {
	var p Patch
	if err := json.Unmarshal([]byte(`{"source_table_id":"one"}`), &p); err == nil {
		t.Fatal("expected type error")
	}
}

func TestPatch_Fields(t *testing.T) {
	p := Patch{Status: Value("Released"), ReleaseID: Null[int]()}
	got := p.Fields()
	if len(got) != 2 || got[0] != "release_id" || got[1] != "status" {
		t.Fatalf("unexpected fields: %v", got)
	}
}

func TestPatch_Apply(t *testing.T) {
	rid := 1
	ticket := "STTM-1"
	m := Mapping{ID: 1, SourceTableID: 1, Status: "Draft", Description: "d", ReleaseID: &rid, JiraTicket: &ticket}

	Patch{
		Status:        Value("Updated"),
		Description:   Null[string](),
		SourceTableID: Null[int](),
		ReleaseID:     Null[int](),
		JiraTicket:    Value("STTM-2"),
	}.apply(&m)

	if m.Status != "Updated" {
		t.Fatalf("status not applied: %q", m.Status)
	}
	if m.Description != "d" || m.SourceTableID != 1 {
		t.Fatalf("explicit null on a required field must be ignored: %+v", m)
	}
	if m.ReleaseID != nil {
		t.Fatalf("expected release cleared, got %v", *m.ReleaseID)
	}
	if m.JiraTicket == nil || *m.JiraTicket != "STTM-2" {
		t.Fatalf("unexpected ticket: %v", m.JiraTicket)
	}
	if ticket != "STTM-1" {
		t.Fatal("apply must not write through caller pointers")
	}
}

func TestField_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		A Field[int] `json:"a"`
		B Field[int] `json:"b"`
	}{A: Value(3), B: Null[int]()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"a":3,"b":null}` {
		t.Fatalf("unexpected json: %s", b)
	}
}
