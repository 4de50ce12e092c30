package store

import (
	"context"

	"github.com/taskvault/taskvault-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
//
// Every operation that addresses an existing task takes the owner's account
// ID alongside the task ID. A task that does not exist and a task owned by a
// different account are both reported as ErrTaskNotFound; callers cannot
// tell the two apart, which is the intended isolation behavior.
type TaskStore interface {
	// Create saves a new task for the given owner, assigning it the next
	// globally sequential ID. Both timestamps are stamped at creation.
	// Returns the stored task.
	Create(ctx context.Context, ownerID int64, fields domain.TaskFields) (*domain.Task, error)

	// List returns all tasks owned by ownerID ordered by descending ID
	// (most recently created first). The result is a fresh slice, not a
	// live view of the store.
	List(ctx context.Context, ownerID int64) ([]*domain.Task, error)

	// GetByID retrieves a task by ID if it is owned by ownerID.
	// Returns ErrTaskNotFound otherwise.
	GetByID(ctx context.Context, ownerID, id int64) (*domain.Task, error)

	// Update overwrites the task's title, description, priority and status
	// and refreshes its updated timestamp. Returns the updated task, or
	// ErrTaskNotFound under the same ownership rule as GetByID.
	Update(ctx context.Context, ownerID, id int64, fields domain.TaskFields) (*domain.Task, error)

	// Delete removes the task permanently and returns it.
	// Returns ErrTaskNotFound under the same ownership rule as GetByID.
	Delete(ctx context.Context, ownerID, id int64) (*domain.Task, error)

	// Count returns the total number of tasks across all owners.
	Count(ctx context.Context) (int, error)
}
