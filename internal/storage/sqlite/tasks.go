package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"todohome/internal/models"
)

const taskColumns = `id, owner_id, text, due_date, assignee, completed, completed_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var (
		t           models.Task
		due         sql.NullString
		completedAt sql.NullTime
	)
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Text, &due, &t.Assignee, &t.Completed, &completedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return models.Task{}, err
	}
	if due.Valid {
		d, err := models.ParseDate(due.String)
		if err != nil {
			return models.Task{}, fmt.Errorf("due date %q: %w", due.String, err)
		}
		t.DueDate = d
	}
	if completedAt.Valid {
		at := completedAt.Time
		t.CompletedAt = &at
	}
	return t, nil
}

func dueValue(d *time.Time) any {
	if d == nil {
		return nil
	}
	return d.Format(models.DateLayout)
}

// CreateTask inserts a new open task and returns it with its assigned id.
func (s *Store) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	if strings.TrimSpace(t.Text) == "" {
		return models.Task{}, fmt.Errorf("task text must not be empty")
	}
	if t.OwnerID == "" {
		return models.Task{}, fmt.Errorf("task owner must not be empty")
	}
	if t.Assignee == "" {
		t.Assignee = t.OwnerID
	}

	id := uuid.New().String()
	now := s.now().UTC()
	_, err := s.db.ExecContext(ctx, `INSERT INTO tasks(id, owner_id, text, due_date, assignee, completed, created_at, updated_at) VALUES(?, ?, ?, ?, ?, 0, ?, ?)`,
		id, t.OwnerID, strings.TrimSpace(t.Text), dueValue(t.DueDate), t.Assignee, now, now)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return s.FindTask(ctx, id, t.OwnerID)
}

// ListTasksByOwner returns every task of the owner in insertion order.
func (s *Store) ListTasksByOwner(ctx context.Context, ownerID string) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE owner_id = ? ORDER BY seq`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// FindTask retrieves a task scoped to its owner. A missing or foreign task
// yields models.ErrNotFoundOrForeign.
func (s *Store) FindTask(ctx context.Context, id, ownerID string) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, models.ErrNotFoundOrForeign
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// UpdateTask overwrites the editable fields of a task. Absent tasks are a no-op.
func (s *Store) UpdateTask(ctx context.Context, id, ownerID string, f models.TaskFields) error {
	_, err := s.db.ExecContext(ctx, `UPDATE tasks SET text = ?, due_date = ?, assignee = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		strings.TrimSpace(f.Text), dueValue(f.DueDate), f.Assignee, s.now().UTC(), id, ownerID)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// CompleteTask marks a task completed at the given time. Absent tasks are a no-op.
func (s *Store) CompleteTask(ctx context.Context, id, ownerID string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `UPDATE tasks SET completed = 1, completed_at = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		at.UTC(), s.now().UTC(), id, ownerID)
	if err != nil {
		return fmt.Errorf("complete task: %w", err)
	}
	return nil
}

// DeleteTask removes a task. Absent tasks are a no-op.
func (s *Store) DeleteTask(ctx context.Context, id, ownerID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND owner_id = ?`, id, ownerID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
