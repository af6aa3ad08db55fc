package service

import (
	"context"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/store"
	"go.uber.org/zap"
)

// ProfileService reads and patches the business profile sections of the
// document. The menu, promotions and posts have their own services and
// are not touched here.
type ProfileService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewProfileService(store store.Store, logger *zap.SugaredLogger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

// ProfilePatch lists the mutable profile sections; nil sections are left
// untouched.
type ProfilePatch struct {
	Name         *string                    `json:"name"`
	Description  *string                    `json:"description"`
	Category     *string                    `json:"category"`
	PriceRange   *string                    `json:"priceRange"`
	Social       *domain.SocialLinks        `json:"social"`
	Contact      *domain.Contact            `json:"contact"`
	Legal        *domain.Legal              `json:"legal"`
	Admin        *domain.Admin              `json:"admin"`
	Subscription *domain.Subscription       `json:"subscription"`
	Hours        map[string]domain.DayHours `json:"hours"`
	Vibes        []string                   `json:"vibes"`
	Amenities    []string                   `json:"amenities"`
}

func (s *ProfileService) Get(ctx context.Context) (*domain.BusinessDocument, error) {
	return s.store.Load(ctx)
}

func (s *ProfileService) Update(ctx context.Context, patch ProfilePatch) (*domain.BusinessDocument, error) {
	var updated *domain.BusinessDocument
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		if patch.Name != nil {
			doc.Name = *patch.Name
		}
		if patch.Description != nil {
			doc.Description = *patch.Description
		}
		if patch.Category != nil {
			doc.Category = *patch.Category
		}
		if patch.PriceRange != nil {
			doc.PriceRange = *patch.PriceRange
		}
		if patch.Social != nil {
			doc.Social = *patch.Social
		}
		if patch.Contact != nil {
			doc.Contact = *patch.Contact
		}
		if patch.Legal != nil {
			doc.Legal = *patch.Legal
		}
		if patch.Admin != nil {
			doc.Admin = *patch.Admin
		}
		if patch.Subscription != nil {
			doc.Subscription = *patch.Subscription
		}
		if patch.Hours != nil {
			doc.Hours = patch.Hours
		}
		if patch.Vibes != nil {
			doc.Vibes = patch.Vibes
		}
		if patch.Amenities != nil {
			doc.Amenities = patch.Amenities
		}

		updated = doc
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("profile updated", "business", updated.Name)

	return updated, nil
}
