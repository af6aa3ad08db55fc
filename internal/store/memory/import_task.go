package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
)

// ImportTaskRepository keeps import tasks in process memory. Used with
// the file store driver and in tests, where no Mongo instance exists.
type ImportTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.ImportTask
}

func NewImportTaskRepository() *ImportTaskRepository {
	return &ImportTaskRepository{
		tasks: make(map[string]domain.ImportTask),
	}
}

func (r *ImportTaskRepository) Create(_ context.Context, task *domain.ImportTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	r.tasks[task.ID] = *task

	return nil
}

func (r *ImportTaskRepository) GetByID(_ context.Context, id string) (*domain.ImportTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("%w: import task %s", domain.ErrNotFound, id)
	}

	return &task, nil
}

func (r *ImportTaskRepository) UpdateStatus(_ context.Context, id string, status domain.ImportTaskStatus, errorMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("%w: import task %s", domain.ErrNotFound, id)
	}

	task.Status = status
	if errorMsg != "" {
		task.ErrorMessage = errorMsg
	}
	task.UpdatedAt = time.Now()
	r.tasks[id] = task

	return nil
}

func (r *ImportTaskRepository) UpdateResult(_ context.Context, id string, categories, products int, status domain.ImportTaskStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("%w: import task %s", domain.ErrNotFound, id)
	}

	task.CategoriesAdded = categories
	task.ProductsAdded = products
	task.Status = status
	task.UpdatedAt = time.Now()
	r.tasks[id] = task

	return nil
}

func (r *ImportTaskRepository) IncrementRetryCount(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return fmt.Errorf("%w: import task %s", domain.ErrNotFound, id)
	}

	task.RetryCount++
	task.UpdatedAt = time.Now()
	r.tasks[id] = task

	return nil
}
