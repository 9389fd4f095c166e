package home

import (
	"encoding/json"
	"fmt"
	"strings"

	"todohome/internal/models"
)

// Kind is the transport name of an action.
type Kind string

const (
	KindSurfaceOpened  Kind = "surface-opened"
	KindOpenCreateForm Kind = "open-create-form"
	KindCommand        Kind = "command"
	KindSubmitCreate   Kind = "submit-create"
	KindOpenEditForm   Kind = "open-edit-form"
	KindSubmitEdit     Kind = "submit-edit"
	KindComplete       Kind = "complete"
	KindDelete         Kind = "delete"
	KindChangeFilter   Kind = "change-filter"
)

// Event is the loosely typed envelope delivered by the transport.
type Event struct {
	Kind    Kind            `json:"kind"`
	ActorID string          `json:"actor_id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Action is a user action the service knows how to handle.
type Action interface {
	Actor() string
	Kind() Kind
}

// FormInput carries the raw values of a submitted task form.
type FormInput struct {
	Text     string `json:"text"`
	DueDate  string `json:"due_date"`
	Assignee string `json:"assignee"`
}

// SurfaceOpened is sent when a user opens the home surface.
type SurfaceOpened struct{ ActorID string }

// OpenCreateForm asks for the empty create form.
type OpenCreateForm struct{ ActorID string }

// SubmitCreate submits the create form.
type SubmitCreate struct {
	ActorID string
	Input   FormInput
}

// OpenEditForm asks for the edit form of a task.
type OpenEditForm struct {
	ActorID string
	TaskID  string
}

// SubmitEdit submits the edit form of a task.
type SubmitEdit struct {
	ActorID string
	TaskID  string
	Input   FormInput
}

// Complete marks a task done.
type Complete struct {
	ActorID string
	TaskID  string
}

// Delete removes a task.
type Delete struct {
	ActorID string
	TaskID  string
}

// ChangeFilter selects the filter mode of the home view.
type ChangeFilter struct {
	ActorID string
	Mode    models.FilterMode
}

// Actor and Kind make every action type satisfy Action.

func (a SurfaceOpened) Actor() string  { return a.ActorID }
func (a OpenCreateForm) Actor() string { return a.ActorID }
func (a SubmitCreate) Actor() string   { return a.ActorID }
func (a OpenEditForm) Actor() string   { return a.ActorID }
func (a SubmitEdit) Actor() string     { return a.ActorID }
func (a Complete) Actor() string       { return a.ActorID }
func (a Delete) Actor() string         { return a.ActorID }
func (a ChangeFilter) Actor() string   { return a.ActorID }

func (SurfaceOpened) Kind() Kind  { return KindSurfaceOpened }
func (OpenCreateForm) Kind() Kind { return KindOpenCreateForm }
func (SubmitCreate) Kind() Kind   { return KindSubmitCreate }
func (OpenEditForm) Kind() Kind   { return KindOpenEditForm }
func (SubmitEdit) Kind() Kind     { return KindSubmitEdit }
func (Complete) Kind() Kind       { return KindComplete }
func (Delete) Kind() Kind         { return KindDelete }
func (ChangeFilter) Kind() Kind   { return KindChangeFilter }

type taskPayload struct {
	TaskID string `json:"task_id"`
}

type editPayload struct {
	TaskID string `json:"task_id"`
	FormInput
}

type filterPayload struct {
	Mode string `json:"mode"`
}

// Decode maps a transport event onto a typed action. Unknown kinds, a missing
// actor or a payload of the wrong shape are rejected with models.ErrUnknownAction.
// Field values are not validated here; handlers own that.
func Decode(ev Event) (Action, error) {
	actor := strings.TrimSpace(ev.ActorID)
	if actor == "" {
		return nil, fmt.Errorf("%w: missing actor", models.ErrUnknownAction)
	}

	switch ev.Kind {
	case KindSurfaceOpened:
		return SurfaceOpened{ActorID: actor}, nil
	case KindOpenCreateForm, KindCommand:
		return OpenCreateForm{ActorID: actor}, nil
	case KindSubmitCreate:
		var in FormInput
		if err := decodePayload(ev, &in); err != nil {
			return nil, err
		}
		return SubmitCreate{ActorID: actor, Input: in}, nil
	case KindOpenEditForm, KindComplete, KindDelete:
		var p taskPayload
		if err := decodePayload(ev, &p); err != nil {
			return nil, err
		}
		if p.TaskID == "" {
			return nil, fmt.Errorf("%w: %s requires task_id", models.ErrUnknownAction, ev.Kind)
		}
		switch ev.Kind {
		case KindOpenEditForm:
			return OpenEditForm{ActorID: actor, TaskID: p.TaskID}, nil
		case KindComplete:
			return Complete{ActorID: actor, TaskID: p.TaskID}, nil
		default:
			return Delete{ActorID: actor, TaskID: p.TaskID}, nil
		}
	case KindSubmitEdit:
		var p editPayload
		if err := decodePayload(ev, &p); err != nil {
			return nil, err
		}
		if p.TaskID == "" {
			return nil, fmt.Errorf("%w: %s requires task_id", models.ErrUnknownAction, ev.Kind)
		}
		return SubmitEdit{ActorID: actor, TaskID: p.TaskID, Input: p.FormInput}, nil
	case KindChangeFilter:
		var p filterPayload
		if err := decodePayload(ev, &p); err != nil {
			return nil, err
		}
		return ChangeFilter{ActorID: actor, Mode: models.FilterMode(p.Mode)}, nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownAction, ev.Kind)
}

func decodePayload(ev Event, dst any) error {
	if len(ev.Payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(ev.Payload, dst); err != nil {
		return fmt.Errorf("%w: %s payload: %v", models.ErrUnknownAction, ev.Kind, err)
	}
	return nil
}
