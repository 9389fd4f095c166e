// Package view turns a user's tasks and filter selection into presentation
// agnostic view models for the home surface and the task forms.
package view

import (
	"fmt"
	"sort"
	"time"

	"todohome/internal/models"
)

// ActionID names an affordance the surface sends back when activated.
type ActionID string

const (
	ActionOpenCreate   ActionID = "open_new_todo"
	ActionComplete     ActionID = "complete_todo"
	ActionEdit         ActionID = "edit_todo"
	ActionDelete       ActionID = "delete_todo"
	ActionChangeFilter ActionID = "change_filter"
)

// Style hints how prominently an affordance is drawn.
type Style string

const (
	StyleDefault Style = ""
	StylePrimary Style = "primary"
	StyleDanger  Style = "danger"
)

// SectionKind discriminates the sections of a home view.
type SectionKind string

const (
	SectionHeader    SectionKind = "header"
	SectionSummary   SectionKind = "summary"
	SectionCreate    SectionKind = "create"
	SectionFilter    SectionKind = "filter"
	SectionLabel     SectionKind = "label"
	SectionTasks     SectionKind = "tasks"
	SectionEmpty     SectionKind = "empty"
	SectionCompleted SectionKind = "completed"
)

// CompletedLimit caps the entries of the completed footer.
const CompletedLimit = 3

const (
	headerText    = "Your To-Do List"
	emptyText     = "No todos yet. Click New Todo to create one."
	completedText = "Recently Completed"
	noDueText     = "—"
)

// Action is a clickable affordance.
type Action struct {
	ID    ActionID `json:"action_id"`
	Label string   `json:"label"`
	Value string   `json:"value,omitempty"`
	Style Style    `json:"style,omitempty"`
}

// FilterOption is one entry of the filter selector.
type FilterOption struct {
	Mode     models.FilterMode `json:"mode"`
	Label    string            `json:"label"`
	Selected bool              `json:"selected"`
}

// TaskItem is a rendered open task.
type TaskItem struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Due     string   `json:"due"`
	DueDate string   `json:"due_date,omitempty"`
	Overdue bool     `json:"overdue"`
	Actions []Action `json:"actions"`
}

// CompletedItem is a rendered completed task.
type CompletedItem struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Struck  bool     `json:"struck"`
	Actions []Action `json:"actions"`
}

// Section is one block of the home view. Only the fields relevant to Kind are set.
type Section struct {
	Kind      SectionKind     `json:"kind"`
	Text      string          `json:"text,omitempty"`
	Count     int             `json:"count"`
	Action    *Action         `json:"action,omitempty"`
	Options   []FilterOption  `json:"options,omitempty"`
	Tasks     []TaskItem      `json:"tasks,omitempty"`
	Completed []CompletedItem `json:"completed,omitempty"`
}

// Home is the full home view of one user.
type Home struct {
	UserID   string            `json:"user_id"`
	Filter   models.FilterMode `json:"filter"`
	Sections []Section         `json:"sections"`
}

// Section returns the first section of the given kind.
func (h Home) Section(kind SectionKind) (Section, bool) {
	for _, s := range h.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Compose builds the home view for userID from its tasks, in store order,
// and the active filter mode.
func Compose(userID string, tasks []models.Task, mode models.FilterMode, now time.Time) Home {
	if !mode.Valid() {
		mode = models.DefaultFilterMode
	}

	sorted := sortTasks(tasks)
	var open, done []models.Task
	for _, t := range sorted {
		if t.Completed {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}

	sections := []Section{
		{Kind: SectionHeader, Text: headerText},
		{Kind: SectionSummary, Count: len(open), Text: fmt.Sprintf("You have %d open ToDo(s)", len(open))},
		{Kind: SectionCreate, Action: &Action{ID: ActionOpenCreate, Label: "New Todo", Style: StylePrimary}},
		{Kind: SectionFilter, Text: "View", Options: filterOptions(mode)},
		{Kind: SectionLabel, Text: mode.Label()},
	}

	var items []TaskItem
	for _, t := range open {
		if Matches(mode, t, now) {
			items = append(items, taskItem(t, now))
		}
	}
	if len(items) == 0 {
		sections = append(sections, Section{Kind: SectionEmpty, Text: emptyText})
	} else {
		sections = append(sections, Section{Kind: SectionTasks, Tasks: items})
	}

	if len(done) > 0 {
		if len(done) > CompletedLimit {
			done = done[:CompletedLimit]
		}
		footer := Section{Kind: SectionCompleted, Text: completedText}
		for _, t := range done {
			footer.Completed = append(footer.Completed, CompletedItem{
				ID:      t.ID,
				Text:    t.Text,
				Struck:  true,
				Actions: []Action{deleteAction(t.ID)},
			})
		}
		sections = append(sections, footer)
	}

	return Home{UserID: userID, Filter: mode, Sections: sections}
}

// sortTasks orders by completion then due date, undated last. Ties keep store order.
func sortTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch {
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		}
		return a.DueDate.Before(*b.DueDate)
	})
	return out
}

func filterOptions(active models.FilterMode) []FilterOption {
	opts := make([]FilterOption, 0, len(models.FilterModes))
	for _, m := range models.FilterModes {
		opts = append(opts, FilterOption{Mode: m, Label: m.Label(), Selected: m == active})
	}
	return opts
}

func taskItem(t models.Task, now time.Time) TaskItem {
	item := TaskItem{
		ID:      t.ID,
		Text:    t.Text,
		DueDate: t.DueString(),
		Actions: []Action{
			{ID: ActionComplete, Label: "Complete", Value: t.ID},
			{ID: ActionEdit, Label: "Edit & Assign", Value: t.ID},
			deleteAction(t.ID),
		},
	}
	switch {
	case IsOverdue(t, now):
		item.Overdue = true
		item.Due = "Overdue: " + t.DueString()
	case t.DueDate != nil:
		item.Due = "Due: " + t.DueString()
	default:
		item.Due = "Due: " + noDueText
	}
	return item
}

func deleteAction(id string) Action {
	return Action{ID: ActionDelete, Label: "Delete", Value: id, Style: StyleDanger}
}
