package service

import (
	"context"

	"restaurant-saas/events"
	"restaurant-saas/stats-svc/internal/storage"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type StatsStore interface {
	// MarkProcessed reports false when the event was already applied.
	MarkProcessed(ctx context.Context, eventID uuid.UUID) (bool, error)
	ForgetProcessed(ctx context.Context, eventID uuid.UUID) error
	RecordOrderCreated(ctx context.Context, event events.OrderEvent) error
	RecordStatusChange(ctx context.Context, event events.OrderEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

var _ StatsStore = (*storage.Store)(nil)
var _ MessageReader = (*kafka.Reader)(nil)
