package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(Config{Path: filepath.Join(t.TempDir(), "business.json")})
	require.NoError(t, err)

	return s
}

func TestNewRequiresPath(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Chicago Deep Pizza", doc.Name)
	assert.Equal(t, domain.SubscriptionActive, doc.Subscription.Status)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "business.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := New(Config{Path: path})
	require.NoError(t, err)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Chicago Deep Pizza", doc.Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := domain.DefaultDocument()
	doc.Name = "Tacos El Güero"
	doc.Menu = []domain.Category{
		{ID: "cat_1", Name: "Tacos", Products: []domain.Product{
			{ID: "prod_1", Name: "Pastor", Price: 25, Available: true},
		}},
	}

	require.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Tacos El Güero", loaded.Name)
	require.Len(t, loaded.Menu, 1)
	require.Len(t, loaded.Menu[0].Products, 1)
	assert.Equal(t, domain.Price(25), loaded.Menu[0].Products[0].Price)
}

func TestUpdatePersistsMutation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Name = "La Terraza"
		return nil
	})
	require.NoError(t, err)

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "La Terraza", doc.Name)
}

func TestUpdateCallbackErrorDiscardsChanges(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, domain.DefaultDocument()))

	err := s.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Name = "should not persist"
		return assert.AnError
	})
	require.Error(t, err)

	doc, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Chicago Deep Pizza", doc.Name)
}

func TestLoadNormalizesNilCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "business.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Minimal"}`), 0o644))

	s, err := New(Config{Path: path})
	require.NoError(t, err)

	doc, err := s.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Minimal", doc.Name)
	assert.NotNil(t, doc.Menu)
	assert.NotNil(t, doc.Promotions)
	assert.NotNil(t, doc.TopPromos)
	assert.NotNil(t, doc.DailySpecials)
	assert.NotNil(t, doc.SocialPosts)
	assert.NotNil(t, doc.Hours)
}
