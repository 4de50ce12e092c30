package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/store"
)

// TaskStore implements the store.TaskStore interface backed by
// process memory. Tasks of all owners share one collection and one
// ID sequence; ownership is enforced on every lookup.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  map[int64]*domain.Task
	nextID int64
	logger *slog.Logger
}

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, the default logger is used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, ownerID int64, fields domain.TaskFields) (*domain.Task, error) {
	task, err := domain.NewTask(ownerID, fields)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.nextID
	s.nextID++
	s.tasks[task.ID] = task

	s.logger.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("owner_id", ownerID))

	copied := *task
	return &copied, nil
}

// List implements store.TaskStore.List.
// The returned slice is freshly materialized on every call and sorted by
// descending ID, so the most recently created task comes first.
func (s *TaskStore) List(ctx context.Context, ownerID int64) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, 0)
	for _, task := range s.tasks {
		if task.OwnerID == ownerID {
			copied := *task
			tasks = append(tasks, &copied)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID > tasks[j].ID
	})

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, err := s.owned(ownerID, id)
	if err != nil {
		return nil, err
	}

	copied := *task
	return &copied, nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, ownerID, id int64, fields domain.TaskFields) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.owned(ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := task.Apply(fields); err != nil {
		return nil, err
	}

	s.logger.Debug("task updated",
		slog.Int64("task_id", id),
		slog.Int64("owner_id", ownerID))

	copied := *task
	return &copied, nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, ownerID, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.owned(ownerID, id)
	if err != nil {
		return nil, err
	}

	delete(s.tasks, id)

	s.logger.Debug("task deleted",
		slog.Int64("task_id", id),
		slog.Int64("owner_id", ownerID))

	copied := *task
	return &copied, nil
}

// Count implements store.TaskStore.Count.
func (s *TaskStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tasks), nil
}

// owned returns the stored task if it exists and belongs to ownerID.
// A missing task and a task owned by someone else both yield
// store.ErrTaskNotFound. Callers must hold the lock.
func (s *TaskStore) owned(ownerID, id int64) (*domain.Task, error) {
	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}
