package service

import (
	"context"
	"net/http"
	"time"

	"restaurant-saas/restaurant-svc/internal/apperr"
	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

type StatsService struct {
	reader    StatsReader
	ownership *Ownership
	now       func() time.Time
}

// NewStatsService accepts a nil reader; stats are then reported as unavailable.
func NewStatsService(reader StatsReader, ownership *Ownership) *StatsService {
	return &StatsService{reader: reader, ownership: ownership, now: time.Now}
}

func (s *StatsService) Get(ctx context.Context, caller, restaurantID uuid.UUID) (*domain.RestaurantStats, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindRestaurant, restaurantID); err != nil {
		return nil, err
	}
	if s.reader == nil {
		return nil, apperr.New(http.StatusServiceUnavailable, "Order statistics are not available", nil)
	}

	stats, err := s.reader.RestaurantStats(ctx, restaurantID, s.now())
	if err != nil {
		return nil, apperr.Internal("Failed to read order statistics", err)
	}
	return stats, nil
}

var _ StatsServiceInterface = (*StatsService)(nil)
