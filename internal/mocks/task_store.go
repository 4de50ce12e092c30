package mocks

import (
	"context"
	"sort"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, ownerID int64, fields domain.TaskFields) (*domain.Task, error)
	ListFn    func(ctx context.Context, ownerID int64) ([]*domain.Task, error)
	GetByIDFn func(ctx context.Context, ownerID, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, ownerID, id int64, fields domain.TaskFields) (*domain.Task, error)
	DeleteFn  func(ctx context.Context, ownerID, id int64) (*domain.Task, error)
	CountFn   func(ctx context.Context) (int, error)

	// Data for default implementation
	Tasks  map[int64]*domain.Task
	NextID int64
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
	}
}

// Ensure MockTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, ownerID int64, fields domain.TaskFields) (*domain.Task, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, fields)
	}

	task, err := domain.NewTask(ownerID, fields)
	if err != nil {
		return nil, err
	}

	task.ID = m.NextID
	m.NextID++
	m.Tasks[task.ID] = task
	return task, nil
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID)
	}

	tasks := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID > tasks[j].ID })
	return tasks, nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, ownerID, id)
	}

	task, ok := m.Tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, ownerID, id int64, fields domain.TaskFields) (*domain.Task, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, ownerID, id, fields)
	}

	task, err := m.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := task.Apply(fields); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}

	task, err := m.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	delete(m.Tasks, id)
	return task, nil
}

// Count implements the TaskStore interface
func (m *MockTaskStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return len(m.Tasks), nil
}
