package service

import (
	"context"
	"fmt"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/store"
	"go.uber.org/zap"
)

const (
	defaultDiscount    = "10%"
	defaultPromoExpiry = 7 * 24 * time.Hour
	topPromosLimit     = 5
)

// PromotionsService is CRUD over the promotions ledger. Every mutation
// recomputes the topPromos snapshot; the snapshot is a display cache,
// List always reads the full ledger.
type PromotionsService struct {
	store  store.Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewPromotionsService(store store.Store, logger *zap.SugaredLogger) *PromotionsService {
	return &PromotionsService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

type CreatePromotionInput struct {
	Title       string
	Description string
	Code        string
	Discount    string
	ExpiryDate  *time.Time
}

type PromotionPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Code        *string    `json:"code"`
	Discount    *string    `json:"discount"`
	ExpiryDate  *time.Time `json:"expiryDate"`
	Active      *bool      `json:"active"`
}

func (s *PromotionsService) List(ctx context.Context) ([]domain.Promotion, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.Promotions, nil
}

func (s *PromotionsService) Create(ctx context.Context, in CreatePromotionInput) (*domain.Promotion, error) {
	if in.Title == "" || in.Description == "" || in.Code == "" {
		return nil, fmt.Errorf("%w: título, descripción y código son obligatorios", domain.ErrValidation)
	}

	discount := in.Discount
	if discount == "" {
		discount = defaultDiscount
	}

	expiry := in.ExpiryDate
	if expiry == nil {
		e := s.now().Add(defaultPromoExpiry)
		expiry = &e
	}

	promo := domain.Promotion{
		ID:          newID("promo"),
		Title:       in.Title,
		Description: in.Description,
		Code:        in.Code,
		Discount:    discount,
		ExpiryDate:  expiry,
		Active:      true,
	}

	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Promotions = append(doc.Promotions, promo)
		doc.TopPromos = topPromos(doc.Promotions, s.now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("promotion created", "promo_id", promo.ID, "code", promo.Code)

	return &promo, nil
}

func (s *PromotionsService) Update(ctx context.Context, id string, patch PromotionPatch) (*domain.Promotion, error) {
	var updated domain.Promotion
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		for i := range doc.Promotions {
			if doc.Promotions[i].ID != id {
				continue
			}

			p := &doc.Promotions[i]
			if patch.Title != nil {
				p.Title = *patch.Title
			}
			if patch.Description != nil {
				p.Description = *patch.Description
			}
			if patch.Code != nil {
				p.Code = *patch.Code
			}
			if patch.Discount != nil {
				p.Discount = *patch.Discount
			}
			if patch.ExpiryDate != nil {
				p.ExpiryDate = patch.ExpiryDate
			}
			if patch.Active != nil {
				p.Active = *patch.Active
			}

			updated = *p
			doc.TopPromos = topPromos(doc.Promotions, s.now())
			return nil
		}
		return fmt.Errorf("%w: promotion %s", domain.ErrNotFound, id)
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *PromotionsService) Delete(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		for i := range doc.Promotions {
			if doc.Promotions[i].ID == id {
				doc.Promotions = append(doc.Promotions[:i], doc.Promotions[i+1:]...)
				doc.TopPromos = topPromos(doc.Promotions, s.now())
				return nil
			}
		}
		return fmt.Errorf("%w: promotion %s", domain.ErrNotFound, id)
	})
	if err != nil {
		return err
	}

	s.logger.Infow("promotion deleted", "promo_id", id)

	return nil
}

// topPromos is the snapshot rule: currently-active promotions only,
// insertion order, capped at five.
func topPromos(promos []domain.Promotion, now time.Time) []domain.Promotion {
	top := []domain.Promotion{}
	for _, p := range promos {
		if !p.ActiveAt(now) {
			continue
		}
		top = append(top, p)
		if len(top) == topPromosLimit {
			break
		}
	}
	return top
}
