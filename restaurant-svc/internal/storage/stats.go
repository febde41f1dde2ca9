package storage

import (
	"context"
	"strconv"
	"strings"
	"time"

	"restaurant-saas/events"
	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const topItemsLimit = 5

// StatsReader reads the aggregates stats-svc maintains in redis.
type StatsReader struct {
	Client *redis.Client
}

func NewStatsReader(client *redis.Client) *StatsReader {
	return &StatsReader{Client: client}
}

func (s *StatsReader) RestaurantStats(ctx context.Context, restaurantID uuid.UUID, now time.Time) (*domain.RestaurantStats, error) {
	day := events.DayOf(now)

	today, err := s.window(ctx, events.DailyStatsKey(restaurantID, day), events.DailyItemsKey(restaurantID, day))
	if err != nil {
		return nil, err
	}
	allTime, err := s.window(ctx, events.TotalStatsKey(restaurantID), events.TotalItemsKey(restaurantID))
	if err != nil {
		return nil, err
	}

	return &domain.RestaurantStats{
		RestaurantID: restaurantID,
		Day:          day,
		Today:        *today,
		AllTime:      *allTime,
	}, nil
}

func (s *StatsReader) window(ctx context.Context, statsKey, itemsKey string) (*domain.StatsWindow, error) {
	fields, err := s.Client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, err
	}

	w := &domain.StatsWindow{
		Revenue:  decimal.Zero,
		ByStatus: map[string]int64{},
		TopItems: []domain.ItemPopularity{},
	}
	for field, raw := range fields {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		switch {
		case field == events.FieldOrders:
			w.Orders = value
		case field == events.FieldRevenueCents:
			w.Revenue = decimal.New(value, -2)
		case strings.HasPrefix(field, events.StatusFieldPrefix):
			if value > 0 {
				w.ByStatus[strings.TrimPrefix(field, events.StatusFieldPrefix)] = value
			}
		}
	}

	top, err := s.Client.ZRevRangeWithScores(ctx, itemsKey, 0, topItemsLimit-1).Result()
	if err != nil {
		return nil, err
	}
	for _, member := range top {
		itemID, err := uuid.Parse(member.Member.(string))
		if err != nil {
			continue
		}
		w.TopItems = append(w.TopItems, domain.ItemPopularity{MenuItemID: itemID, Quantity: int64(member.Score)})
	}

	return w, nil
}
