package domain

import (
	"fmt"
	"time"
)

// ErrEmptyTitle is returned when a task is created or updated without a title.
var ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)

// Defaults applied when a task is created without an explicit value.
// Priority and status are free-form strings; callers may send anything.
const (
	DefaultPriority = "medium"
	DefaultStatus   = "pending"
)

// Task represents a titled unit of work owned by exactly one Account.
// The ID is globally unique across all owners and immutable after creation,
// as is the owner ID.
type Task struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskFields carries the caller-supplied mutable attributes of a task.
// It is used both at creation and on update; an empty priority or status
// falls back to the default in either case, matching the payload contract.
type TaskFields struct {
	Title       string
	Description string
	Priority    string
	Status      string
}

// Validate checks that the fields form a valid task payload.
func (f TaskFields) Validate() error {
	if f.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// withDefaults returns a copy of the fields with empty priority and status
// replaced by their defaults.
func (f TaskFields) withDefaults() TaskFields {
	if f.Priority == "" {
		f.Priority = DefaultPriority
	}
	if f.Status == "" {
		f.Status = DefaultStatus
	}
	return f
}

// NewTask creates a new Task owned by the given account with defaults
// applied and both timestamps stamped at minute resolution. The ID is
// assigned by the store at creation. Returns an error if validation fails.
func NewTask(ownerID int64, fields TaskFields) (*Task, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	fields = fields.withDefaults()
	now := Now()
	return &Task{
		OwnerID:     ownerID,
		Title:       fields.Title,
		Description: fields.Description,
		Priority:    fields.Priority,
		Status:      fields.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Apply overwrites the task's mutable fields and refreshes the updated
// timestamp. ID, owner and creation time are never touched.
func (t *Task) Apply(fields TaskFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	fields = fields.withDefaults()
	t.Title = fields.Title
	t.Description = fields.Description
	t.Priority = fields.Priority
	t.Status = fields.Status
	t.UpdatedAt = Now()
	return nil
}

// Now returns the current UTC time truncated to minute resolution,
// the granularity task timestamps are recorded at.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Minute)
}
