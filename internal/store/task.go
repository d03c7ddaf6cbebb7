package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskFilter narrows the result of TaskStore.List. UserID is mandatory:
// tasks are always listed within a single owner's scope. Page and Limit
// are assumed to be pre-clamped by the service layer.
type TaskFilter struct {
	UserID uuid.UUID
	Status *domain.TaskStatus
	Page   int
	Limit  int
}

// Offset returns the row offset corresponding to the filter's page.
func (f TaskFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	// Ownership is NOT checked here; that is the service layer's job.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List retrieves the page of tasks matching the filter, ordered by
	// creation time descending, along with the total number of matching
	// rows across all pages.
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, int, error)

	// Update modifies an existing task. The caller must provide a complete
	// task object; partial-update semantics are applied by the service layer.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	// Deletion is permanent; there is no soft delete.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
