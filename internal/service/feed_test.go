package service

import (
	"context"
	"testing"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOpenNow(t *testing.T) {
	// 2025-06-16 is a Monday
	monday := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 16, hour, minute, 0, 0, time.UTC)
	}

	hours := map[string]OpenHours{
		"1": {Open: 900, Close: 1800},
	}

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "mid-morning open", now: monday(10, 0), want: true},
		{name: "exactly at open", now: monday(9, 0), want: true},
		{name: "exactly at close", now: monday(18, 0), want: true},
		{name: "after close", now: monday(19, 0), want: false},
		{name: "before open", now: monday(8, 59), want: false},
		{name: "day without hours", now: monday(10, 0).Add(24 * time.Hour), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsOpenNow(hours, tc.now))
		})
	}
}

func TestIsOpenNowInvertedWindowNeverOpen(t *testing.T) {
	monday := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)
	hours := map[string]OpenHours{"1": {Open: 1800, Close: 900}}

	assert.False(t, IsOpenNow(hours, monday))
}

func TestHoursToWindows(t *testing.T) {
	windows := HoursToWindows(map[string]domain.DayHours{
		"Lunes":   {Open: "09:00", Close: "22:00"},
		"Domingo": {Open: "10:30", Close: "21:00"},
		"Martes":  {Open: "bad", Close: "22:00"},
		"Monday":  {Open: "09:00", Close: "22:00"},
	})

	require.Len(t, windows, 2)
	assert.Equal(t, OpenHours{Open: 900, Close: 2200}, windows["1"])
	assert.Equal(t, OpenHours{Open: 1030, Close: 2100}, windows["0"])
}

func TestHomeFeedFlags(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// Monday 10:00, inside default Monday hours
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	expiry := now.Add(48 * time.Hour)

	require.NoError(t, st.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Promotions = []domain.Promotion{
			{ID: "promo_1", Title: "2x1", Active: true, ExpiryDate: &expiry},
		}
		return nil
	}))

	svc := NewFeedService(st, nil, testLogger())
	svc.now = func() time.Time { return now }

	entries, err := svc.HomeFeed(ctx, 22.77, -102.58, 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Chicago Deep Pizza", entry.Name)
	assert.Equal(t, "chicago-deep-pizza", entry.Slug)
	assert.True(t, entry.IsOpenNow)
	assert.True(t, entry.HasActivePromotion)
}

func TestHomeFeedClosedAndNoPromos(t *testing.T) {
	st := newTestStore(t)
	svc := NewFeedService(st, nil, testLogger())
	// Monday 03:00, outside opening hours
	svc.now = func() time.Time { return time.Date(2025, 6, 16, 3, 0, 0, 0, time.UTC) }

	entries, err := svc.HomeFeed(context.Background(), 0, 0, 3)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.False(t, entries[0].IsOpenNow)
	assert.False(t, entries[0].HasActivePromotion)
}

func TestBusinessDetail(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC) // Monday
	expiry := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	require.NoError(t, st.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Menu = []domain.Category{
			{ID: "cat_1", Name: "Pizzas", Products: []domain.Product{
				{ID: "prod_1", Name: "Deep Dish", Price: 249, Available: true},
			}},
		}
		doc.Promotions = []domain.Promotion{
			{ID: "promo_live", Title: "Vigente", Active: true, ExpiryDate: &expiry},
			{ID: "promo_old", Title: "Vencida", Active: true, ExpiryDate: &past},
		}
		doc.DailySpecials = map[string]string{"Lunes": "prod_1"}
		return nil
	}))

	svc := NewFeedService(st, nil, testLogger())
	svc.now = func() time.Time { return now }

	detail, err := svc.BusinessDetail(ctx, "chicago-deep-pizza")
	require.NoError(t, err)

	assert.True(t, detail.Available)
	assert.Equal(t, "Chicago Deep Pizza", detail.Name)
	assert.True(t, detail.IsOpenNow)
	assert.Equal(t, "prod_1", detail.DailySpecial)

	require.Len(t, detail.Menu, 1)
	require.Len(t, detail.Menu[0].Products, 1)
	assert.Equal(t, "$249", detail.Menu[0].Products[0].Price)

	// only currently-active promotions are exposed
	require.Len(t, detail.Promotions, 1)
	assert.Equal(t, "promo_live", detail.Promotions[0].ID)
}

func TestBusinessDetailSubscriptionGate(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Subscription.Status = "cancelled"
		return nil
	}))

	svc := NewFeedService(st, nil, testLogger())

	detail, err := svc.BusinessDetail(ctx, "chicago-deep-pizza")
	require.NoError(t, err)

	assert.False(t, detail.Available)
	assert.Empty(t, detail.Name)
	assert.Empty(t, detail.Menu)
}

func TestBusinessDetailUnknownSlug(t *testing.T) {
	svc := NewFeedService(newTestStore(t), nil, testLogger())

	_, err := svc.BusinessDetail(context.Background(), "otro-negocio")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
