package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/store"
	"go.uber.org/zap"
)

// OpenHours is a storefront opening window encoded as integer HHMM,
// keyed by weekday index ("0" Sunday .. "6" Saturday).
type OpenHours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// IsOpenNow reports whether now falls inside the window for its weekday.
// A missing day means closed; a close time earlier than the open time is
// never open (no cross-midnight handling).
func IsOpenNow(hours map[string]OpenHours, now time.Time) bool {
	day := strconv.Itoa(int(now.Weekday()))
	window, ok := hours[day]
	if !ok {
		return false
	}

	current := now.Hour()*100 + now.Minute()

	return current >= window.Open && current <= window.Close
}

// FeedEntry is one business on the home feed, decorated with the
// client-visible flags.
type FeedEntry struct {
	Name               string  `json:"name"`
	Slug               string  `json:"slug"`
	Type               string  `json:"type"`
	PriceRange         string  `json:"priceRange"`
	Description        string  `json:"description"`
	IsOpenNow          bool    `json:"isOpenNow"`
	HasActivePromotion bool    `json:"hasActivePromotion"`
	DistanceKm         float64 `json:"distance,omitempty"`
}

// MenuSection and MenuEntry are the storefront menu rendering, prices
// formatted for display.
type MenuSection struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Products []MenuEntry `json:"products"`
}

type MenuEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Available   bool   `json:"available"`
}

// BusinessDetail is the storefront view of the profile. Available is
// false when the subscription lapsed, with no other fields set; callers
// render a "not available" state rather than an error.
type BusinessDetail struct {
	Available    bool                `json:"available"`
	Name         string              `json:"name,omitempty"`
	Slug         string              `json:"slug,omitempty"`
	Description  string              `json:"description,omitempty"`
	Category     string              `json:"category,omitempty"`
	PriceRange   string              `json:"priceRange,omitempty"`
	Contact      *domain.Contact     `json:"contact,omitempty"`
	Social       *domain.SocialLinks `json:"social,omitempty"`
	Vibes        []string            `json:"vibes,omitempty"`
	Amenities    []string            `json:"amenities,omitempty"`
	IsOpenNow    bool                `json:"isOpenNow"`
	Menu         []MenuSection       `json:"menu,omitempty"`
	Promotions   []domain.Promotion  `json:"promotions,omitempty"`
	DailySpecial string              `json:"dailySpecial,omitempty"`
}

// Discovery locates nearby businesses. The real implementation lives in
// an external service; the console ships a local one that only knows its
// own business.
type Discovery interface {
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]domain.BusinessDocument, error)
}

type FeedService struct {
	store     store.Store
	discovery Discovery
	logger    *zap.SugaredLogger
	now       func() time.Time
}

func NewFeedService(store store.Store, discovery Discovery, logger *zap.SugaredLogger) *FeedService {
	s := &FeedService{
		store:     store,
		discovery: discovery,
		logger:    logger,
		now:       time.Now,
	}
	if s.discovery == nil {
		s.discovery = selfDiscovery{store: store}
	}
	return s
}

// HomeFeed renders the discovery results with the open-now and active-
// promotion flags computed from each business document.
func (s *FeedService) HomeFeed(ctx context.Context, lat, lng, radiusKm float64) ([]FeedEntry, error) {
	businesses, err := s.discovery.Nearby(ctx, lat, lng, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to discover businesses: %w", err)
	}

	now := s.now()
	entries := make([]FeedEntry, 0, len(businesses))
	for i := range businesses {
		b := &businesses[i]
		entries = append(entries, FeedEntry{
			Name:               b.Name,
			Slug:               b.Slug(),
			Type:               b.Category,
			PriceRange:         b.PriceRange,
			Description:        b.Description,
			IsOpenNow:          IsOpenNow(HoursToWindows(b.Hours), now),
			HasActivePromotion: hasActivePromotion(b.Promotions, now),
		})
	}

	return entries, nil
}

// BusinessDetail is the storefront page projection, gated on an active
// subscription.
func (s *FeedService) BusinessDetail(ctx context.Context, slug string) (*BusinessDetail, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	if doc.Slug() != slug {
		return nil, fmt.Errorf("%w: business %s", domain.ErrNotFound, slug)
	}

	if doc.Subscription.Status != domain.SubscriptionActive {
		return &BusinessDetail{Available: false}, nil
	}

	now := s.now()

	menu := make([]MenuSection, 0, len(doc.Menu))
	for _, c := range doc.Menu {
		section := MenuSection{ID: c.ID, Name: c.Name, Products: []MenuEntry{}}
		for _, p := range c.Products {
			section.Products = append(section.Products, MenuEntry{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price.Display(),
				Image:       p.Image,
				Available:   p.Available,
			})
		}
		menu = append(menu, section)
	}

	active := []domain.Promotion{}
	for _, p := range doc.Promotions {
		if p.ActiveAt(now) {
			active = append(active, p)
		}
	}

	return &BusinessDetail{
		Available:    true,
		Name:         doc.Name,
		Slug:         doc.Slug(),
		Description:  doc.Description,
		Category:     doc.Category,
		PriceRange:   doc.PriceRange,
		Contact:      &doc.Contact,
		Social:       &doc.Social,
		Vibes:        doc.Vibes,
		Amenities:    doc.Amenities,
		IsOpenNow:    IsOpenNow(HoursToWindows(doc.Hours), now),
		Menu:         menu,
		Promotions:   active,
		DailySpecial: doc.DailySpecials[spanishWeekday(now)],
	}, nil
}

func hasActivePromotion(promos []domain.Promotion, now time.Time) bool {
	for _, p := range promos {
		if p.ActiveAt(now) {
			return true
		}
	}
	return false
}

// HoursToWindows converts the owner-facing hours (Spanish weekday keys,
// "HH:MM" strings) to the weekday-index HHMM windows the feed checks.
func HoursToWindows(hours map[string]domain.DayHours) map[string]OpenHours {
	windows := make(map[string]OpenHours, len(hours))
	for day, h := range hours {
		idx, ok := weekdayIndex[day]
		if !ok {
			continue
		}
		open, okOpen := parseHHMM(h.Open)
		closeAt, okClose := parseHHMM(h.Close)
		if !okOpen || !okClose {
			continue
		}
		windows[strconv.Itoa(idx)] = OpenHours{Open: open, Close: closeAt}
	}
	return windows
}

// weekdayIndex follows time.Weekday numbering: Sunday is 0.
var weekdayIndex = map[string]int{
	"Domingo":   0,
	"Lunes":     1,
	"Martes":    2,
	"Miércoles": 3,
	"Jueves":    4,
	"Viernes":   5,
	"Sábado":    6,
}

func spanishWeekday(now time.Time) string {
	idx := int(now.Weekday())
	for day, i := range weekdayIndex {
		if i == idx {
			return day
		}
	}
	return ""
}

func parseHHMM(s string) (int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*100 + minutes, true
}

// selfDiscovery serves the feed from the console's own store; a single
// business is always "nearby".
type selfDiscovery struct {
	store store.Store
}

func (d selfDiscovery) Nearby(ctx context.Context, _, _, _ float64) ([]domain.BusinessDocument, error) {
	doc, err := d.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return []domain.BusinessDocument{*doc}, nil
}
