package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentID is the fixed _id of the single business document. The
// console manages one business, so the collection holds one record.
const documentID = "business"

// DocumentStore keeps the business document in a single upserted Mongo
// record, behind the same load/save contract as the file store.
type DocumentStore struct {
	collection *mongo.Collection
	mu         sync.Mutex
}

func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{
		collection: db.Collection("business"),
	}
}

func (s *DocumentStore) Load(ctx context.Context) (*domain.BusinessDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var envelope struct {
		ID       string                  `bson:"_id"`
		Document domain.BusinessDocument `bson:"document"`
	}

	err := s.collection.FindOne(ctx, bson.M{"_id": documentID}).Decode(&envelope)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return domain.DefaultDocument(), nil
		}
		return nil, fmt.Errorf("%w: load business document: %v", domain.ErrStorage, err)
	}

	doc := envelope.Document
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

	return &doc, nil
}

func (s *DocumentStore) Save(ctx context.Context, doc *domain.BusinessDocument) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"_id": documentID}
	update := bson.M{
		"$set": bson.M{
			"document":   doc,
			"updated_at": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("%w: save business document: %v", domain.ErrStorage, err)
	}

	return nil
}

func (s *DocumentStore) Update(ctx context.Context, fn func(doc *domain.BusinessDocument) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.Save(ctx, doc)
}
