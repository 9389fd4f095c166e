// Package home implements the task actions of the home surface: every action
// mutates the task store as needed and redelivers the actor's full home view.
package home

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"todohome/internal/models"
	"todohome/internal/view"
)

// TaskStore is the owner-scoped persistence the service depends on.
type TaskStore interface {
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	ListTasksByOwner(ctx context.Context, ownerID string) ([]models.Task, error)
	FindTask(ctx context.Context, id, ownerID string) (models.Task, error)
	UpdateTask(ctx context.Context, id, ownerID string, f models.TaskFields) error
	CompleteTask(ctx context.Context, id, ownerID string, at time.Time) error
	DeleteTask(ctx context.Context, id, ownerID string) error
}

// FilterState holds the per-user filter selection.
type FilterState interface {
	Get(userID string) models.FilterMode
	Set(userID string, mode models.FilterMode) error
}

// Surface delivers rendered output to a user.
type Surface interface {
	PublishHome(ctx context.Context, userID string, h view.Home) error
	OpenForm(ctx context.Context, userID string, f view.Form) error
	CloseForm(ctx context.Context, userID string) error
	Notify(ctx context.Context, userID, text string) error
}

const updatedMessage = "Todo updated successfully"

// Service dispatches actions to their handlers.
type Service struct {
	tasks   TaskStore
	filters FilterState
	surface Surface
	logger  *slog.Logger
	now     func() time.Time
}

// New wires a service. A nil logger falls back to slog.Default.
func New(tasks TaskStore, filters FilterState, surface Surface, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tasks: tasks, filters: filters, surface: surface, logger: logger, now: time.Now}
}

// Handle runs a single action to completion. Returned errors are scoped to
// the action; a task that is missing or foreign never surfaces as an error.
func (s *Service) Handle(ctx context.Context, a Action) error {
	switch a := a.(type) {
	case SurfaceOpened:
		return s.render(ctx, a.ActorID)
	case OpenCreateForm:
		return s.surface.OpenForm(ctx, a.ActorID, view.NewTaskForm())
	case SubmitCreate:
		return s.create(ctx, a)
	case OpenEditForm:
		return s.openEdit(ctx, a)
	case SubmitEdit:
		return s.submitEdit(ctx, a)
	case Complete:
		return s.complete(ctx, a)
	case Delete:
		return s.delete(ctx, a)
	case ChangeFilter:
		return s.changeFilter(ctx, a)
	case nil:
		return fmt.Errorf("%w: nil action", models.ErrUnknownAction)
	}
	return fmt.Errorf("%w: %T", models.ErrUnknownAction, a)
}

func (s *Service) create(ctx context.Context, a SubmitCreate) error {
	fields, err := parseFields(a.ActorID, a.Input)
	if err != nil {
		return s.reject(ctx, a.ActorID, view.NewTaskForm(), a.Input, err)
	}

	task, err := s.tasks.CreateTask(ctx, models.Task{
		OwnerID:  a.ActorID,
		Text:     fields.Text,
		DueDate:  fields.DueDate,
		Assignee: fields.Assignee,
	})
	if err != nil {
		return storeErr("create task", err)
	}
	s.logger.Debug("task created", slog.String("user", a.ActorID), slog.String("task", task.ID))

	if err := s.surface.CloseForm(ctx, a.ActorID); err != nil {
		return err
	}
	return s.render(ctx, a.ActorID)
}

func (s *Service) openEdit(ctx context.Context, a OpenEditForm) error {
	task, ok, err := s.find(ctx, a.ActorID, a.TaskID)
	if err != nil || !ok {
		return err
	}
	return s.surface.OpenForm(ctx, a.ActorID, view.EditTaskForm(task))
}

func (s *Service) submitEdit(ctx context.Context, a SubmitEdit) error {
	task, ok, err := s.find(ctx, a.ActorID, a.TaskID)
	if err != nil || !ok {
		return err
	}

	fields, err := parseFields(a.ActorID, a.Input)
	if err != nil {
		return s.reject(ctx, a.ActorID, view.EditTaskForm(task), a.Input, err)
	}

	if err := s.tasks.UpdateTask(ctx, a.TaskID, a.ActorID, fields); err != nil {
		return storeErr("update task", err)
	}

	if err := s.surface.CloseForm(ctx, a.ActorID); err != nil {
		return err
	}
	if err := s.surface.Notify(ctx, a.ActorID, updatedMessage); err != nil {
		s.logger.Warn("notify failed", slog.String("user", a.ActorID), slog.String("error", err.Error()))
	}
	return s.render(ctx, a.ActorID)
}

func (s *Service) complete(ctx context.Context, a Complete) error {
	if err := s.tasks.CompleteTask(ctx, a.TaskID, a.ActorID, s.now()); err != nil {
		return storeErr("complete task", err)
	}
	return s.render(ctx, a.ActorID)
}

func (s *Service) delete(ctx context.Context, a Delete) error {
	if err := s.tasks.DeleteTask(ctx, a.TaskID, a.ActorID); err != nil {
		return storeErr("delete task", err)
	}
	return s.render(ctx, a.ActorID)
}

func (s *Service) changeFilter(ctx context.Context, a ChangeFilter) error {
	if err := s.filters.Set(a.ActorID, a.Mode); err != nil {
		return err
	}
	return s.render(ctx, a.ActorID)
}

// render recomposes and delivers the full home view of userID.
func (s *Service) render(ctx context.Context, userID string) error {
	tasks, err := s.tasks.ListTasksByOwner(ctx, userID)
	if err != nil {
		return storeErr("list tasks", err)
	}
	h := view.Compose(userID, tasks, s.filters.Get(userID), s.now())
	return s.surface.PublishHome(ctx, userID, h)
}

// find loads a task scoped to the actor. ok is false, with a nil error, when
// the task is missing or foreign; that case is logged and otherwise ignored.
func (s *Service) find(ctx context.Context, actorID, taskID string) (models.Task, bool, error) {
	task, err := s.tasks.FindTask(ctx, taskID, actorID)
	if errors.Is(err, models.ErrNotFoundOrForeign) {
		s.logger.Warn("edit abandoned: task not found or foreign", slog.String("user", actorID), slog.String("task", taskID))
		return models.Task{}, false, nil
	}
	if err != nil {
		return models.Task{}, false, storeErr("find task", err)
	}
	return task, true, nil
}

// reject re-shows form with the submitted values and the validation message.
func (s *Service) reject(ctx context.Context, userID string, form view.Form, in FormInput, cause error) error {
	form = form.WithValues(in.Text, in.DueDate, in.Assignee, validationMessage(cause))
	if err := s.surface.OpenForm(ctx, userID, form); err != nil {
		return err
	}
	return cause
}

// parseFields validates a submitted form. The assignee defaults to the actor.
func parseFields(actorID string, in FormInput) (models.TaskFields, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return models.TaskFields{}, fmt.Errorf("%w: text is required", models.ErrValidation)
	}
	due, err := models.ParseDate(strings.TrimSpace(in.DueDate))
	if err != nil {
		return models.TaskFields{}, fmt.Errorf("%w: due date %q is not YYYY-MM-DD", models.ErrValidation, in.DueDate)
	}
	assignee := strings.TrimSpace(in.Assignee)
	if assignee == "" {
		assignee = actorID
	}
	return models.TaskFields{Text: text, DueDate: due, Assignee: assignee}, nil
}

func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, models.ErrStoreUnavailable, err)
}
