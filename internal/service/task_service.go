package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// Pagination bounds applied by List.
const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CreateTaskInput carries the caller-supplied fields for task creation.
// Status is not settable at creation; new tasks always start as todo.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    int
	DueDate     *time.Time
}

// UpdateTaskInput carries a partial update. Only non-nil fields are applied;
// everything else is left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *int
	DueDate     *time.Time
}

// ListTasksInput carries the list filter. Page and Limit are clamped, not
// rejected: page to >= 1, limit to [1,100] with a default of 10.
type ListTasksInput struct {
	Status *domain.TaskStatus
	Page   int
	Limit  int
}

// TaskService provides owner-scoped task operations. Every read and mutation
// is authorized against the task's owning user.
type TaskService interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateTaskInput) (*domain.Task, error)

	// GetByID fetches a task. Returns store.ErrTaskNotFound if it does not
	// exist and ErrNotOwned if it belongs to a different user.
	GetByID(ctx context.Context, userID, taskID uuid.UUID) (*domain.Task, error)

	// List returns the user's tasks, optionally filtered by status, as a
	// pagination envelope.
	List(ctx context.Context, userID uuid.UUID, in ListTasksInput) (domain.PaginatedResponse[domain.Task], error)

	// Update applies a partial update to a task owned by the user.
	Update(ctx context.Context, userID, taskID uuid.UUID, in UpdateTaskInput) (*domain.Task, error)

	// Delete permanently removes a task owned by the user.
	Delete(ctx context.Context, userID, taskID uuid.UUID) error
}

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) *TaskServiceImpl {
	return &TaskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}
}

// Create persists a new task owned by the given user.
func (s *TaskServiceImpl) Create(
	ctx context.Context,
	userID uuid.UUID,
	in CreateTaskInput,
) (*domain.Task, error) {
	task, err := domain.NewTask(userID, in.Title, in.Description, in.Priority, in.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "task_id", task.ID, "user_id", userID)
	return task, nil
}

// GetByID fetches a task and enforces ownership. The ownership check runs
// even when the task exists so a foreign task yields 403, not a silent 200.
func (s *TaskServiceImpl) GetByID(
	ctx context.Context,
	userID, taskID uuid.UUID,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		s.logger.Error("failed to fetch task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}

	if task.UserID != userID {
		s.logger.Debug("task access denied",
			"task_id", taskID,
			"owner_id", task.UserID,
			"requester_id", userID)
		return nil, ErrNotOwned
	}

	return task, nil
}

// List returns a page of the user's tasks.
func (s *TaskServiceImpl) List(
	ctx context.Context,
	userID uuid.UUID,
	in ListTasksInput,
) (domain.PaginatedResponse[domain.Task], error) {
	page := in.Page
	if page < 1 {
		page = 1
	}

	limit := in.Limit
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	if in.Status != nil && !domain.IsValidTaskStatus(*in.Status) {
		return domain.PaginatedResponse[domain.Task]{}, fmt.Errorf(
			"%w: %w", store.ErrInvalidEntity, domain.ErrInvalidTaskStatus)
	}

	filter := store.TaskFilter{
		UserID: userID,
		Status: in.Status,
		Page:   page,
		Limit:  limit,
	}

	tasks, total, err := s.taskStore.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list tasks", "error", err, "user_id", userID)
		return domain.PaginatedResponse[domain.Task]{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return domain.NewPaginatedResponse(tasks, total, page, limit), nil
}

// Update loads the task via GetByID (inheriting its ownership check), applies
// only the fields present in the input, and persists the result.
func (s *TaskServiceImpl) Update(
	ctx context.Context,
	userID, taskID uuid.UUID,
	in UpdateTaskInput,
) (*domain.Task, error) {
	task, err := s.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Status != nil {
		if err := task.SetStatus(*in.Status); err != nil {
			return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.logger.Debug("task updated", "task_id", taskID, "user_id", userID)
	return task, nil
}

// Delete removes a task after the ownership check. Deletion is permanent.
func (s *TaskServiceImpl) Delete(ctx context.Context, userID, taskID uuid.UUID) error {
	if _, err := s.GetByID(ctx, userID, taskID); err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, taskID); err != nil {
		s.logger.Error("failed to delete task", "error", err, "task_id", taskID)
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.logger.Debug("task deleted", "task_id", taskID, "user_id", userID)
	return nil
}
