package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
)

// Store keeps the business document in a single JSON file. A mutex
// serializes load-mutate-save so concurrent writers cannot interleave.
type Store struct {
	path string
	mu   sync.Mutex
}

type Config struct {
	Path string
}

func New(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file store: path is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("file store: create data dir: %w", err)
	}

	return &Store{path: cfg.Path}, nil
}

func (s *Store) Load(_ context.Context) (*domain.BusinessDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *Store) Save(_ context.Context, doc *domain.BusinessDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(doc)
}

func (s *Store) Update(_ context.Context, fn func(doc *domain.BusinessDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.save(doc)
}

func (s *Store) load() (*domain.BusinessDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultDocument(), nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, s.path, err)
	}

	var doc domain.BusinessDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		// unreadable document, fall back to defaults
		return domain.DefaultDocument(), nil
	}

	normalize(&doc)

	return &doc, nil
}

// save writes to a temp file and renames it over the document, so a
// crash mid-write never leaves a half-written file behind.
func (s *Store) save(doc *domain.BusinessDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal document: %v", domain.ErrStorage, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: rename %s: %v", domain.ErrStorage, tmp, err)
	}

	return nil
}

func normalize(doc *domain.BusinessDocument) {
	if doc.Menu == nil {
		doc.Menu = []domain.Category{}
	}
	if doc.Promotions == nil {
		doc.Promotions = []domain.Promotion{}
	}
	if doc.TopPromos == nil {
		doc.TopPromos = []domain.Promotion{}
	}
	if doc.DailySpecials == nil {
		doc.DailySpecials = map[string]string{}
	}
	if doc.SocialPosts == nil {
		doc.SocialPosts = []domain.SocialPost{}
	}
	if doc.Hours == nil {
		doc.Hours = map[string]domain.DayHours{}
	}
}
