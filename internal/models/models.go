package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire and storage format of due dates.
const DateLayout = "2006-01-02"

// Task is a single to-do item owned by one chat user.
type Task struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Text        string     `json:"text"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Assignee    string     `json:"assignee"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// DueString returns the due date in DateLayout, or "" when the task has no deadline.
func (t Task) DueString() string {
	if t.DueDate == nil {
		return ""
	}
	return t.DueDate.Format(DateLayout)
}

// TaskFields holds the user-editable part of a task. An edit overwrites all of them.
type TaskFields struct {
	Text     string
	DueDate  *time.Time
	Assignee string
}

// Installation is the opaque credential record kept per chat workspace.
type Installation struct {
	TeamID       string          `json:"team_id"`
	EnterpriseID string          `json:"enterprise_id,omitempty"`
	Payload      json.RawMessage `json:"installation"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ParseDate converts a YYYY-MM-DD string into a UTC midnight time.
// An empty string yields nil.
func ParseDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation(DateLayout, raw, time.UTC)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
