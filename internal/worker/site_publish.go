package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/queue"
	"github.com/JesusTreelabx/routvi-console/internal/service"
	"go.uber.org/zap"
)

type SitePublishWorker struct {
	publishService *service.PublishService
	broker         queue.Broker
	logger         *zap.SugaredLogger
	ctx            context.Context
	cancel         context.CancelFunc
}

func NewSitePublishWorker(
	publishService *service.PublishService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *SitePublishWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &SitePublishWorker{
		publishService: publishService,
		broker:         broker,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

func (w *SitePublishWorker) Start() error {
	w.logger.Info("starting site publish worker")

	return w.broker.Subscribe(w.ctx, queue.QueueSitePublish, w.handleMessage)
}

func (w *SitePublishWorker) Stop() {
	w.logger.Info("stopping site publish worker")
	w.cancel()
}

func (w *SitePublishWorker) handleMessage(ctx context.Context, message []byte) error {
	var msg domain.SitePublishMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		w.logger.Errorw("failed to unmarshal message", "error", err)
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	w.logger.Infow("processing site publish job", "job_id", msg.JobID)

	if err := w.publishService.ProcessPublishJob(ctx, msg); err != nil {
		w.logger.Errorw("failed to process publish job", "job_id", msg.JobID, "error", err)
		return err
	}

	return nil
}
