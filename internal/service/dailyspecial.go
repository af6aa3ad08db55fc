package service

import (
	"context"
	"fmt"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/store"
	"go.uber.org/zap"
)

// DailySpecialService maps Spanish weekday names to a product id, one
// product per weekday. Product existence is deliberately not checked.
type DailySpecialService struct {
	store  store.Store
	logger *zap.SugaredLogger
}

func NewDailySpecialService(store store.Store, logger *zap.SugaredLogger) *DailySpecialService {
	return &DailySpecialService{
		store:  store,
		logger: logger,
	}
}

func (s *DailySpecialService) Get(ctx context.Context) (map[string]string, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return doc.DailySpecials, nil
}

// Set assigns the product to one weekday, or to all seven when
// isDefault is set.
func (s *DailySpecialService) Set(ctx context.Context, productID, dayOfWeek string, isDefault bool) (map[string]string, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product ID is required", domain.ErrValidation)
	}
	if !isDefault && !domain.IsWeekday(dayOfWeek) {
		return nil, fmt.Errorf("%w: invalid day of week %q", domain.ErrValidation, dayOfWeek)
	}

	var specials map[string]string
	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		if doc.DailySpecials == nil {
			doc.DailySpecials = map[string]string{}
		}

		if isDefault {
			for _, day := range domain.Weekdays {
				doc.DailySpecials[day] = productID
			}
		} else {
			doc.DailySpecials[dayOfWeek] = productID
		}

		specials = doc.DailySpecials
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("daily special set", "product_id", productID, "day", dayOfWeek, "default", isDefault)

	return specials, nil
}
