package view

import "todohome/internal/models"

// FormID identifies the submission a form produces.
type FormID string

const (
	FormCreate FormID = "create_todo"
	FormUpdate FormID = "update_todo"
)

// Form is a modal task form.
type Form struct {
	ID       FormID `json:"callback_id"`
	Title    string `json:"title"`
	Heading  string `json:"heading"`
	Submit   string `json:"submit"`
	TaskID   string `json:"private_metadata,omitempty"`
	Text     string `json:"text,omitempty"`
	Assignee string `json:"assignee,omitempty"`
	DueDate  string `json:"due_date,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NewTaskForm is the empty create form.
func NewTaskForm() Form {
	return Form{ID: FormCreate, Title: "New ToDo", Heading: "Create a new task", Submit: "Save"}
}

// EditTaskForm is the update form pre-filled from t.
func EditTaskForm(t models.Task) Form {
	return Form{
		ID:       FormUpdate,
		Title:    "Edit ToDo",
		Heading:  "Update your task",
		Submit:   "Update",
		TaskID:   t.ID,
		Text:     t.Text,
		Assignee: t.Assignee,
		DueDate:  t.DueString(),
	}
}

// WithValues returns a copy of f showing submitted values and a validation message.
func (f Form) WithValues(text, dueDate, assignee, msg string) Form {
	f.Text = text
	f.DueDate = dueDate
	f.Assignee = assignee
	f.Error = msg
	return f
}
