package view

import (
	"testing"
	"time"

	"todohome/internal/models"
)

var now = time.Date(2026, 10, 14, 15, 30, 0, 0, time.UTC)

func due(raw string) *time.Time {
	d, err := models.ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		task models.Task
		want Status
	}{
		{"yesterday", models.Task{DueDate: due("2026-10-13")}, StatusOverdue},
		{"today ignores time of day", models.Task{DueDate: due("2026-10-14")}, StatusUpcoming},
		{"tomorrow", models.Task{DueDate: due("2026-10-15")}, StatusUpcoming},
		{"no deadline", models.Task{}, StatusInbox},
		{"completed overdue", models.Task{DueDate: due("2026-10-01"), Completed: true}, StatusCompleted},
		{"completed undated", models.Task{Completed: true}, StatusCompleted},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.task, now); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPredicatesAreExclusiveForOpenTasks(t *testing.T) {
	t.Parallel()

	tasks := []models.Task{
		{DueDate: due("2020-01-01")},
		{DueDate: due("2026-10-13")},
		{DueDate: due("2026-10-14")},
		{DueDate: due("2030-06-30")},
		{},
	}
	for _, task := range tasks {
		n := 0
		for _, hit := range []bool{IsOverdue(task, now), IsUpcoming(task, now), IsInbox(task)} {
			if hit {
				n++
			}
		}
		if n != 1 {
			t.Errorf("Expected exactly one class for due %q, got %d", task.DueString(), n)
		}

		task.Completed = true
		if IsOverdue(task, now) || IsUpcoming(task, now) || IsInbox(task) {
			t.Errorf("Expected completed task with due %q to match no open class", task.DueString())
		}
	}
}

func TestIsOverdueUsesLocalCalendarDate(t *testing.T) {
	t.Parallel()

	// 23:30 on the 14th in UTC-5 is already the 15th in UTC.
	loc := time.FixedZone("EST", -5*3600)
	late := time.Date(2026, 10, 14, 23, 30, 0, 0, loc)
	task := models.Task{DueDate: due("2026-10-14")}

	if IsOverdue(task, late) {
		t.Error("Expected task due today in the caller's zone not to be overdue")
	}
}
