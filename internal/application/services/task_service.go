package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskloop/core/internal/domain/entities"
	"github.com/taskloop/core/internal/infrastructure/logger"
	"github.com/taskloop/core/internal/ports"
)

// TaskService mediates all reads and writes to task records, enforcing
// ownership scoping, due-date validation and soft-delete visibility.
type TaskService struct {
	taskRepo ports.TaskRepository
	logger   *logger.Logger
	// now is swappable so validation against "today" is testable.
	now func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo ports.TaskRepository, logger *logger.Logger) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateTask validates the request and persists a new task bound to
// the calling owner.
func (s *TaskService) CreateTask(ctx context.Context, ownerID uuid.UUID, req ports.CreateTaskRequest) (*entities.Task, error) {
	verr := entities.NewValidationError()

	title := s.requireField(verr, "title", req.Title)
	description := s.requireField(verr, "description", req.Description)
	dueDate := s.requireDueDate(verr, req.DueDate)

	if verr.HasErrors() {
		return nil, verr
	}

	now := s.now().UTC()
	task := &entities.Task{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsDeleted:   false,
		OwnerID:     ownerID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Infow("Task created", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// GetTask retrieves a single non-deleted task owned by the caller.
func (s *TaskService) GetTask(ctx context.Context, ownerID uuid.UUID, id int64) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns the caller's non-deleted tasks in insertion order,
// optionally narrowed by exact due date and/or title substring.
func (s *TaskService) ListTasks(ctx context.Context, ownerID uuid.UUID, filter ports.TaskFilter) ([]*entities.Task, error) {
	tasks, err := s.taskRepo.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTask applies a partial update. Only supplied fields are
// validated and changed; the due-date rule re-applies only when a due
// date is supplied. Refreshes updated_at on success.
func (s *TaskService) UpdateTask(ctx context.Context, ownerID uuid.UUID, id int64, req ports.UpdateTaskRequest) (*entities.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	verr := entities.NewValidationError()

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			verr.Add("title", entities.MsgFieldBlank)
		} else {
			task.Title = *req.Title
		}
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			verr.Add("description", entities.MsgFieldBlank)
		} else {
			task.Description = *req.Description
		}
	}
	if req.DueDate != nil {
		dueDate, ok := s.parseDueDate(verr, *req.DueDate)
		if ok {
			task.DueDate = dueDate
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	task.UpdatedAt = s.now().UTC()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Infow("Task updated", "task_id", task.ID, "owner_id", ownerID)

	return task, nil
}

// SoftDeleteTask marks the task deleted. The task stays in the store
// but drops out of every subsequent read; a second delete on the same
// id therefore reports not found rather than succeeding silently.
func (s *TaskService) SoftDeleteTask(ctx context.Context, ownerID uuid.UUID, id int64) error {
	task, err := s.taskRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}

	task.IsDeleted = true
	task.UpdatedAt = s.now().UTC()

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Infow("Task soft-deleted", "task_id", id, "owner_id", ownerID)

	return nil
}

// requireField records a required/blank violation and returns the
// value when it is usable.
func (s *TaskService) requireField(verr *entities.ValidationError, field string, value *string) string {
	if value == nil {
		verr.Add(field, entities.MsgFieldRequired)
		return ""
	}
	if strings.TrimSpace(*value) == "" {
		verr.Add(field, entities.MsgFieldBlank)
		return ""
	}
	return *value
}

func (s *TaskService) requireDueDate(verr *entities.ValidationError, value *string) entities.Date {
	if value == nil {
		verr.Add("due_date", entities.MsgFieldRequired)
		return entities.Date{}
	}
	dueDate, _ := s.parseDueDate(verr, *value)
	return dueDate
}

// parseDueDate parses and checks the not-in-the-past rule. A task
// already past due that is updated without touching due_date is
// deliberately left alone; the rule fires only on supplied values.
func (s *TaskService) parseDueDate(verr *entities.ValidationError, value string) (entities.Date, bool) {
	if strings.TrimSpace(value) == "" {
		verr.Add("due_date", entities.MsgFieldBlank)
		return entities.Date{}, false
	}

	dueDate, err := entities.ParseDate(value)
	if err != nil {
		verr.Add("due_date", entities.MsgDueDateInvalid)
		return entities.Date{}, false
	}

	today := entities.DateOf(s.now())
	if dueDate.Before(today) {
		verr.Add("due_date", entities.MsgDueDateInPast)
		return entities.Date{}, false
	}

	return dueDate, true
}
