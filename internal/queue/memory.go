package queue

import (
	"context"
	"fmt"
	"sync"
)

// MemoryBroker is an in-process broker for deployments without RabbitMQ
// and for tests. Messages published to a queue with no subscriber are
// buffered until one registers.
type MemoryBroker struct {
	mu       sync.Mutex
	handlers map[string]MessageHandler
	pending  map[string][][]byte
	closed   bool
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		handlers: make(map[string]MessageHandler),
		pending:  make(map[string][][]byte),
	}
}

func (b *MemoryBroker) Publish(ctx context.Context, queueName string, message []byte) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("broker is closed")
	}

	handler, ok := b.handlers[queueName]
	if !ok {
		b.pending[queueName] = append(b.pending[queueName], message)
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	if err := handler(ctx, message); err != nil {
		return fmt.Errorf("failed to handle message on %s: %w", queueName, err)
	}

	return nil
}

func (b *MemoryBroker) Subscribe(ctx context.Context, queueName string, handler MessageHandler) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return fmt.Errorf("broker is closed")
	}

	b.handlers[queueName] = handler
	backlog := b.pending[queueName]
	b.pending[queueName] = nil
	b.mu.Unlock()

	for _, message := range backlog {
		if err := handler(ctx, message); err != nil {
			return fmt.Errorf("failed to drain backlog on %s: %w", queueName, err)
		}
	}

	return nil
}

func (b *MemoryBroker) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	b.handlers = make(map[string]MessageHandler)
	b.pending = make(map[string][][]byte)

	return nil
}
