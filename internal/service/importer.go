package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/parser"
	"github.com/JesusTreelabx/routvi-console/internal/queue"
	"github.com/JesusTreelabx/routvi-console/internal/repo"
	"go.uber.org/zap"
)

// CatalogParser reads a spreadsheet into category/product rows.
type CatalogParser interface {
	ParseCatalog(ctx context.Context, spreadsheetID string) ([]parser.Category, error)
}

// ImportService runs asynchronous menu imports: a task is queued over
// the broker and the worker feeds parsed rows through the catalog
// service, so catalog invariants hold for imported entities too.
type ImportService struct {
	taskRepo repo.ImportTaskRepository
	catalog  *CatalogService
	parser   CatalogParser
	broker   queue.Broker
	logger   *zap.SugaredLogger
}

func NewImportService(
	taskRepo repo.ImportTaskRepository,
	catalog *CatalogService,
	parser CatalogParser,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *ImportService {
	return &ImportService{
		taskRepo: taskRepo,
		catalog:  catalog,
		parser:   parser,
		broker:   broker,
		logger:   logger,
	}
}

func (s *ImportService) CreateImportTask(ctx context.Context, spreadsheetID string) (string, error) {
	if spreadsheetID == "" {
		return "", fmt.Errorf("%w: spreadsheet ID is required", domain.ErrValidation)
	}

	task := &domain.ImportTask{
		ID:            newID("import"),
		Status:        domain.StatusQueued,
		SpreadsheetID: spreadsheetID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return "", fmt.Errorf("failed to create import task: %w", err)
	}

	message := domain.MenuImportMessage{
		TaskID:        task.ID,
		SpreadsheetID: spreadsheetID,
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueMenuImport, messageBytes); err != nil {
		_ = s.taskRepo.UpdateStatus(ctx, task.ID, domain.StatusFailed, err.Error())
		return "", fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("import task created", "task_id", task.ID, "spreadsheet_id", spreadsheetID)

	return task.ID, nil
}

func (s *ImportService) GetTaskStatus(ctx context.Context, taskID string) (*domain.ImportTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *ImportService) ProcessImportTask(ctx context.Context, taskID string) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if s.parser == nil {
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, "importer is not configured")
		return fmt.Errorf("importer is not configured")
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusProcessing, ""); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	s.logger.Infow("processing import task", "task_id", taskID)

	categories, err := s.parser.ParseCatalog(ctx, task.SpreadsheetID)
	if err != nil {
		s.logger.Errorw("failed to parse catalog", "task_id", taskID, "error", err)
		_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
		return fmt.Errorf("failed to parse catalog: %w", err)
	}

	var categoriesAdded, productsAdded int
	for _, c := range categories {
		category, err := s.catalog.CreateCategory(ctx, c.Name)
		if err != nil {
			s.logger.Errorw("failed to create category", "task_id", taskID, "name", c.Name, "error", err)
			_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
			return fmt.Errorf("failed to create category: %w", err)
		}
		categoriesAdded++

		for _, p := range c.Products {
			price := domain.Price(p.Price)
			created, err := s.catalog.CreateProduct(ctx, category.ID, CreateProductInput{
				Name:        p.Name,
				Description: p.Description,
				Price:       &price,
				Image:       p.Image,
			})
			if err != nil {
				s.logger.Errorw("failed to create product", "task_id", taskID, "name", p.Name, "error", err)
				_ = s.taskRepo.UpdateStatus(ctx, taskID, domain.StatusFailed, err.Error())
				return fmt.Errorf("failed to create product: %w", err)
			}

			// new products default to available, sheets can mark them off
			if !p.Available {
				available := false
				if _, err := s.catalog.UpdateProduct(ctx, created.ID, ProductPatch{Available: &available}); err != nil {
					s.logger.Warnw("failed to mark imported product unavailable", "product_id", created.ID, "error", err)
				}
			}
			productsAdded++
		}
	}

	if err := s.taskRepo.UpdateResult(ctx, taskID, categoriesAdded, productsAdded, domain.StatusCompleted); err != nil {
		return fmt.Errorf("failed to update task result: %w", err)
	}

	s.logger.Infow("import task completed", "task_id", taskID, "categories", categoriesAdded, "products", productsAdded)

	return nil
}
