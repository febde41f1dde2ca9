package storage

import (
	"context"
	"time"

	"restaurant-saas/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	dailyTTL     = 8 * 24 * time.Hour
	processedTTL = 48 * time.Hour

	statusPending  = "pending"
	statusCanceled = "canceled"
)

// Store keeps per-restaurant order aggregates in redis hashes and sorted sets.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func (s *Store) MarkProcessed(ctx context.Context, eventID uuid.UUID) (bool, error) {
	return s.rdb.SetNX(ctx, events.ProcessedEventKey(eventID), 1, processedTTL).Result()
}

func (s *Store) ForgetProcessed(ctx context.Context, eventID uuid.UUID) error {
	return s.rdb.Del(ctx, events.ProcessedEventKey(eventID)).Err()
}

func (s *Store) RecordOrderCreated(ctx context.Context, event events.OrderEvent) error {
	day := events.DayOf(createdAt(event))
	dailyKey := events.DailyStatsKey(event.RestaurantID, day)
	totalKey := events.TotalStatsKey(event.RestaurantID)
	dailyItems := events.DailyItemsKey(event.RestaurantID, day)
	totalItems := events.TotalItemsKey(event.RestaurantID)
	cents := revenueCents(event)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range []string{dailyKey, totalKey} {
			pipe.HIncrBy(ctx, key, events.FieldOrders, 1)
			pipe.HIncrBy(ctx, key, events.FieldRevenueCents, cents)
			pipe.HIncrBy(ctx, key, events.StatusFieldPrefix+statusPending, 1)
		}

		for _, item := range event.Items {
			member := item.MenuItemID.String()
			pipe.ZIncrBy(ctx, dailyItems, float64(item.Quantity), member)
			pipe.ZIncrBy(ctx, totalItems, float64(item.Quantity), member)
		}

		pipe.Expire(ctx, dailyKey, dailyTTL)
		pipe.Expire(ctx, dailyItems, dailyTTL)
		return nil
	})
	return err
}

// RecordStatusChange moves one order between status buckets of the day it
// was placed on and of the all-time hash. A cancellation also takes the
// order's revenue back out of both.
func (s *Store) RecordStatusChange(ctx context.Context, event events.OrderEvent) error {
	dailyKey := events.DailyStatsKey(event.RestaurantID, events.DayOf(createdAt(event)))
	totalKey := events.TotalStatsKey(event.RestaurantID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range []string{dailyKey, totalKey} {
			pipe.HIncrBy(ctx, key, events.StatusFieldPrefix+event.PreviousStatus, -1)
			pipe.HIncrBy(ctx, key, events.StatusFieldPrefix+event.Status, 1)
			if event.Status == statusCanceled {
				pipe.HIncrBy(ctx, key, events.FieldRevenueCents, -revenueCents(event))
			}
		}
		pipe.Expire(ctx, dailyKey, dailyTTL)
		return nil
	})
	return err
}

func revenueCents(event events.OrderEvent) int64 {
	return event.TotalAmount.Shift(2).Round(0).IntPart()
}

func createdAt(event events.OrderEvent) time.Time {
	if event.OrderCreatedAt.IsZero() {
		return event.Timestamp
	}
	return event.OrderCreatedAt
}
