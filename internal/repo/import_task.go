package repo

import (
	"context"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
)

type ImportTaskRepository interface {
	Create(ctx context.Context, task *domain.ImportTask) error
	GetByID(ctx context.Context, id string) (*domain.ImportTask, error)
	UpdateStatus(ctx context.Context, id string, status domain.ImportTaskStatus, errorMsg string) error
	UpdateResult(ctx context.Context, id string, categories, products int, status domain.ImportTaskStatus) error
	IncrementRetryCount(ctx context.Context, id string) error
}
