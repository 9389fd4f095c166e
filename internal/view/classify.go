package view

import (
	"time"

	"todohome/internal/models"
)

// Status is the temporal class of a task.
type Status string

const (
	// StatusOverdue is an open task due before today.
	StatusOverdue Status = "overdue"
	// StatusUpcoming is an open task due today or later.
	StatusUpcoming Status = "upcoming"
	// StatusInbox is an open task without a due date.
	StatusInbox Status = "inbox"
	// StatusCompleted is a finished task, whatever its due date.
	StatusCompleted Status = "completed"
)

// today truncates now to its calendar date, expressed as UTC midnight so it
// compares directly with stored due dates.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dueDay(t models.Task) time.Time {
	y, m, d := t.DueDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsOverdue reports an open task whose due date lies before today.
func IsOverdue(t models.Task, now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return dueDay(t).Before(today(now))
}

// IsUpcoming reports an open task due today or later.
func IsUpcoming(t models.Task, now time.Time) bool {
	if t.DueDate == nil || t.Completed {
		return false
	}
	return !dueDay(t).Before(today(now))
}

// IsInbox reports an open task without a deadline.
func IsInbox(t models.Task) bool {
	return t.DueDate == nil && !t.Completed
}

// Classify returns the single status that holds for t.
func Classify(t models.Task, now time.Time) Status {
	switch {
	case t.Completed:
		return StatusCompleted
	case IsOverdue(t, now):
		return StatusOverdue
	case IsUpcoming(t, now):
		return StatusUpcoming
	default:
		return StatusInbox
	}
}

// Matches reports whether an open task belongs to the list selected by mode.
func Matches(mode models.FilterMode, t models.Task, now time.Time) bool {
	switch mode {
	case models.FilterOverdue:
		return IsOverdue(t, now)
	case models.FilterUpcoming:
		return IsUpcoming(t, now)
	case models.FilterInbox:
		return IsInbox(t)
	}
	return false
}
