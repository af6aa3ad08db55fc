package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/JesusTreelabx/routvi-console/internal/domain"
	"github.com/JesusTreelabx/routvi-console/internal/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueuePublish(t *testing.T) {
	broker := queue.NewMemoryBroker()
	svc := NewPublishService(newTestStore(t), broker, testLogger())
	ctx := context.Background()

	var received domain.SitePublishMessage
	err := broker.Subscribe(ctx, queue.QueueSitePublish, func(_ context.Context, msg []byte) error {
		return json.Unmarshal(msg, &received)
	})
	require.NoError(t, err)

	jobID, err := svc.QueuePublish(ctx)
	require.NoError(t, err)

	assert.NotEmpty(t, jobID)
	assert.Equal(t, jobID, received.JobID)
	assert.False(t, received.RequestedAt.IsZero())
}

func TestProcessPublishJob(t *testing.T) {
	svc := NewPublishService(newTestStore(t), queue.NewMemoryBroker(), testLogger())

	err := svc.ProcessPublishJob(context.Background(), domain.SitePublishMessage{JobID: "build_1"})
	assert.NoError(t, err)
}

func TestProcessPublishJobRejectsUnnamedBusiness(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.Update(ctx, func(doc *domain.BusinessDocument) error {
		doc.Name = ""
		return nil
	}))

	svc := NewPublishService(st, queue.NewMemoryBroker(), testLogger())

	err := svc.ProcessPublishJob(ctx, domain.SitePublishMessage{JobID: "build_1"})
	assert.Error(t, err)
}
