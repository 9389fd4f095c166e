package home

import (
	"encoding/json"
	"errors"
	"testing"

	"todohome/internal/models"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   Event
		want Action
	}{
		{"surface opened", Event{Kind: KindSurfaceOpened, ActorID: "U1"}, SurfaceOpened{ActorID: "U1"}},
		{"open create", Event{Kind: KindOpenCreateForm, ActorID: "U1"}, OpenCreateForm{ActorID: "U1"}},
		{"slash command", Event{Kind: KindCommand, ActorID: "U1"}, OpenCreateForm{ActorID: "U1"}},
		{
			"submit create",
			Event{Kind: KindSubmitCreate, ActorID: "U1", Payload: json.RawMessage(`{"text":"a","due_date":"2026-10-20","assignee":"U2"}`)},
			SubmitCreate{ActorID: "U1", Input: FormInput{Text: "a", DueDate: "2026-10-20", Assignee: "U2"}},
		},
		{"open edit", Event{Kind: KindOpenEditForm, ActorID: "U1", Payload: json.RawMessage(`{"task_id":"T1"}`)}, OpenEditForm{ActorID: "U1", TaskID: "T1"}},
		{
			"submit edit",
			Event{Kind: KindSubmitEdit, ActorID: "U1", Payload: json.RawMessage(`{"task_id":"T1","text":"b"}`)},
			SubmitEdit{ActorID: "U1", TaskID: "T1", Input: FormInput{Text: "b"}},
		},
		{"complete", Event{Kind: KindComplete, ActorID: "U1", Payload: json.RawMessage(`{"task_id":"T1"}`)}, Complete{ActorID: "U1", TaskID: "T1"}},
		{"delete", Event{Kind: KindDelete, ActorID: " U1 ", Payload: json.RawMessage(`{"task_id":"T1"}`)}, Delete{ActorID: "U1", TaskID: "T1"}},
		{"change filter", Event{Kind: KindChangeFilter, ActorID: "U1", Payload: json.RawMessage(`{"mode":"bogus"}`)}, ChangeFilter{ActorID: "U1", Mode: "bogus"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tt.ev)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %#v, got %#v", tt.want, got)
			}
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   Event
	}{
		{"unknown kind", Event{Kind: "archive", ActorID: "U1"}},
		{"missing actor", Event{Kind: KindSurfaceOpened}},
		{"missing task id", Event{Kind: KindComplete, ActorID: "U1"}},
		{"edit without task id", Event{Kind: KindSubmitEdit, ActorID: "U1", Payload: json.RawMessage(`{"text":"x"}`)}},
		{"wrong payload shape", Event{Kind: KindDelete, ActorID: "U1", Payload: json.RawMessage(`["T1"]`)}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Decode(tt.ev); !errors.Is(err, models.ErrUnknownAction) {
				t.Errorf("Expected ErrUnknownAction, got %v", err)
			}
		})
	}
}
