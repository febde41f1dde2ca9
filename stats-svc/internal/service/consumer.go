package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"restaurant-saas/events"
	"restaurant-saas/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnknownEvent = errors.New("unknown event type")

type Consumer struct {
	Reader MessageReader
	Store  StatsStore
}

func NewConsumer(reader MessageReader, store StatsStore) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads order events until ctx is canceled or the reader is closed.
// Malformed or failing events are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	logger.Info(ctx, "Starting order stats consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				logger.Info(ctx, "Order stats consumer stopped")
				return
			}
			logger.Error(ctx, "Error reading message", err)
			continue
		}

		var event events.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			logger.Warn(ctx, "Skipping malformed order event", zap.Error(err), zap.Int64("offset", message.Offset))
			continue
		}

		if err := c.Process(ctx, event); err != nil {
			logger.Error(ctx, "Error processing order event", err,
				zap.String("event_id", event.EventID.String()),
				zap.String("type", event.Type))
		}
	}
}

// Process applies one event to the aggregates. Redelivered events are ignored.
func (c *Consumer) Process(ctx context.Context, event events.OrderEvent) error {
	var record func(context.Context, events.OrderEvent) error
	switch event.Type {
	case events.TypeOrderCreated:
		record = c.Store.RecordOrderCreated
	case events.TypeOrderStatusChanged:
		if event.PreviousStatus == "" {
			return fmt.Errorf("status change of order %s has no previous status", event.OrderID)
		}
		record = c.Store.RecordStatusChange
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event.Type)
	}
	if event.EventID == uuid.Nil || event.RestaurantID == uuid.Nil {
		return fmt.Errorf("event %q is missing its identifiers", event.Type)
	}

	fresh, err := c.Store.MarkProcessed(ctx, event.EventID)
	if err != nil {
		return err
	}
	if !fresh {
		logger.Debug(ctx, "Skipping duplicate order event", zap.String("event_id", event.EventID.String()))
		return nil
	}

	if err := record(ctx, event); err != nil {
		if forgetErr := c.Store.ForgetProcessed(ctx, event.EventID); forgetErr != nil {
			logger.Warn(ctx, "Failed to release event marker", zap.Error(forgetErr))
		}
		return err
	}

	logger.Debug(ctx, "Order event applied",
		zap.String("type", event.Type),
		zap.String("order_id", event.OrderID.String()),
		zap.String("status", event.Status))
	return nil
}
