package service

import (
	"context"
	"fmt"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/store"
	"go.uber.org/zap"
)

// CatalogService owns category and product CRUD over the business
// document. Category ids are unique within the catalog, product ids
// within the whole catalog; deleting a category cascades to its
// products.
type CatalogService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewCatalogService(store store.Store, logger *zap.SugaredLogger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
	}
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       *domain.Price
	Image       string
}

// ProductPatch lists the mutable product fields; nil means "leave as is".
type ProductPatch struct {
	Name        *string       `json:"name"`
	Description *string       `json:"description"`
	Price       *domain.Price `json:"price"`
	Image       *string       `json:"image"`
	Available   *bool         `json:"available"`
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Menu, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}

	category := domain.Category{
		ID:       newID("cat"),
		Name:     name,
		Products: []domain.Product{},
	}

	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Menu = append(doc.Menu, category)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("category created", "category_id", category.ID, "name", name)

	return &category, nil
}

func (s *CatalogService) RenameCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrValidation)
	}

	var renamed domain.Category
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		for i := range doc.Menu {
			if doc.Menu[i].ID == id {
				doc.Menu[i].Name = name
				renamed = doc.Menu[i]
				return nil
			}
		}
		return fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
	})
	if err != nil {
		return nil, err
	}

	return &renamed, nil
}

// DeleteCategory removes the category and all of its products. A second
// delete of the same id reports not found, retries are not idempotent.
func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		for i := range doc.Menu {
			if doc.Menu[i].ID == id {
				doc.Menu = append(doc.Menu[:i], doc.Menu[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("category deleted", "category_id", id)

	return nil
}

func (s *CatalogService) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range doc.Menu {
		if doc.Menu[i].ID == categoryID {
			if doc.Menu[i].Products == nil {
				return []domain.Product{}, nil
			}
			return doc.Menu[i].Products, nil
		}
	}

	return nil, fmt.Errorf("%w: category %s", domain.ErrNotFound, categoryID)
}

func (s *CatalogService) CreateProduct(ctx context.Context, categoryID string, in CreateProductInput) (*domain.Product, error) {
	if in.Name == "" || in.Price == nil {
		return nil, fmt.Errorf("%w: nombre y precio son obligatorios", domain.ErrValidation)
	}

	image := in.Image
	if image == "" {
		image = domain.PlaceholderProductImage
	}

	product := domain.Product{
		ID:          newID("prod"),
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Image:       image,
		Available:   true,
	}

	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		for i := range doc.Menu {
			if doc.Menu[i].ID == categoryID {
				doc.Menu[i].Products = append(doc.Menu[i].Products, product)
				return nil
			}
		}
		return fmt.Errorf("%w: category %s", domain.ErrNotFound, categoryID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("product created", "product_id", product.ID, "category_id", categoryID)

	return &product, nil
}

// UpdateProduct scans all categories for the product and merges only the
// supplied fields. Product ids are unique catalog-wide, so the first
// match is the only match.
func (s *CatalogService) UpdateProduct(ctx context.Context, productID string, patch ProductPatch) (*domain.Product, error) {
	var updated domain.Product
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		for i := range doc.Menu {
			for j := range doc.Menu[i].Products {
				if doc.Menu[i].Products[j].ID != productID {
					continue
				}

				p := &doc.Menu[i].Products[j]
				if patch.Name != nil {
					p.Name = *patch.Name
				}
				if patch.Description != nil {
					p.Description = *patch.Description
				}
				if patch.Price != nil {
					p.Price = *patch.Price
				}
				if patch.Image != nil {
					p.Image = *patch.Image
				}
				if patch.Available != nil {
					p.Available = *patch.Available
				}

				updated = *p
				return nil
			}
		}
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, productID)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID string) error {
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		for i := range doc.Menu {
			for j := range doc.Menu[i].Products {
				if doc.Menu[i].Products[j].ID == productID {
					doc.Menu[i].Products = append(doc.Menu[i].Products[:j], doc.Menu[i].Products[j+1:]...)
					return nil
				}
			}
		}
		return fmt.Errorf("%w: product %s", domain.ErrNotFound, productID)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("product deleted", "product_id", productID)

	return nil
}
