package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/store"
	"go.uber.org/zap"
)

// SocialService is the append-only social post feed.
type SocialService struct {
	store  store.Store
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewSocialService(store store.Store, logger *zap.SugaredLogger) *SocialService {
	return &SocialService{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (s *SocialService) Create(ctx context.Context, content, mediaURL, postType string) (*domain.SocialPost, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", domain.ErrValidation)
	}

	if postType == "" {
		postType = domain.PostTypeDefault
	}

	post := domain.SocialPost{
		ID:        newID("post"),
		Content:   content,
		MediaURL:  mediaURL,
		Type:      postType,
		CreatedAt: s.now(),
	}

	err := s.store.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.SocialPosts = append(doc.SocialPosts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("social post created", "post_id", post.ID, "type", postType)

	return &post, nil
}

// List returns posts newest first.
func (s *SocialService) List(ctx context.Context) ([]domain.SocialPost, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]domain.SocialPost, len(doc.SocialPosts))
	copy(posts, doc.SocialPosts)

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	return posts, nil
}
