package store

import (
	"context"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
)

// Store persists the whole business document. Load substitutes a default
// document when the backing data is missing or unreadable; Save
// overwrites the document as a unit.
type Store interface {
	Load(ctx context.Context) (*domain.BusinessDocument, error)
	Save(ctx context.Context, doc *domain.BusinessDocument) error

	// Update runs fn inside the store's load-mutate-save critical
	// section. The document is only written if fn returns nil.
	Update(ctx context.Context, fn func(doc *domain.BusinessDocument) error) error
}
