package service

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/parser"
	"github.com/JesusTreelabx/routvi-console/internal/queue"
	"github.com/JesusTreelabx/routvi-console/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser struct {
	categories []parser.Category
	err        error
}

func (p *stubParser) ParseCatalog(_ context.Context, _ string) ([]parser.Category, error) {
	return p.categories, p.err
}

func newImportFixture(t *testing.T, p CatalogParser) (*ImportService, *CatalogService, *queue.MemoryBroker) {
	t.Helper()

	st := newTestStore(t)
	catalog := NewCatalogService(st, testLogger())
	broker := queue.NewMemoryBroker()
	svc := NewImportService(memory.NewImportTaskRepository(), catalog, p, broker, testLogger())

	return svc, catalog, broker
}

func TestCreateImportTask(t *testing.T) {
	svc, _, broker := newImportFixture(t, &stubParser{})
	ctx := context.Background()

	var received domain.MenuImportMessage
	err := broker.Subscribe(ctx, queue.QueueMenuImport, func(_ context.Context, msg []byte) error {
		return json.Unmarshal(msg, &received)
	})
	require.NoError(t, err)

	taskID, err := svc.CreateImportTask(ctx, "sheet-123")
	require.NoError(t, err)
	assert.NotEmpty(t, taskID)
	assert.Equal(t, taskID, received.TaskID)
	assert.Equal(t, "sheet-123", received.SpreadsheetID)

	task, err := svc.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusQueued, task.Status)
}

func TestCreateImportTaskValidation(t *testing.T) {
	svc, _, _ := newImportFixture(t, &stubParser{})

	_, err := svc.CreateImportTask(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProcessImportTask(t *testing.T) {
	p := &stubParser{categories: []parser.Category{
		{Name: "Pizzas", Products: []parser.Product{
			{Name: "Deep Dish", Description: "Queso", Price: 249, Available: true},
			{Name: "Agotada", Price: 199, Available: false},
		}},
		{Name: "Bebidas", Products: []parser.Product{
			{Name: "Limonada", Price: 45, Available: true},
		}},
	}}

	svc, catalog, _ := newImportFixture(t, p)
	ctx := context.Background()

	taskID, err := svc.CreateImportTask(ctx, "sheet-123")
	require.NoError(t, err)

	require.NoError(t, svc.ProcessImportTask(ctx, taskID))

	task, err := svc.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	assert.Equal(t, 2, task.CategoriesAdded)
	assert.Equal(t, 3, task.ProductsAdded)

	categories, err := catalog.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	products, err := catalog.ListProducts(ctx, categories[0].ID)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].Available)
	assert.False(t, products[1].Available)
}

func TestProcessImportTaskParserFailure(t *testing.T) {
	p := &stubParser{err: fmt.Errorf("spreadsheet not shared")}
	svc, _, _ := newImportFixture(t, p)
	ctx := context.Background()

	taskID, err := svc.CreateImportTask(ctx, "sheet-123")
	require.NoError(t, err)

	err = svc.ProcessImportTask(ctx, taskID)
	require.Error(t, err)

	task, err := svc.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, task.Status)
	assert.Contains(t, task.ErrorMessage, "spreadsheet not shared")
}

func TestProcessImportTaskWithoutParser(t *testing.T) {
	svc, _, _ := newImportFixture(t, nil)
	ctx := context.Background()

	taskID, err := svc.CreateImportTask(ctx, "sheet-123")
	require.NoError(t, err)

	err = svc.ProcessImportTask(ctx, taskID)
	require.Error(t, err)

	task, err := svc.GetTaskStatus(ctx, taskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, task.Status)
}

func TestGetTaskStatusUnknown(t *testing.T) {
	svc, _, _ := newImportFixture(t, &stubParser{})

	_, err := svc.GetTaskStatus(context.Background(), "import_missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
