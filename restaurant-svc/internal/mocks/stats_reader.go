package mocks

import (
	"context"
	"time"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// StatsReader is a mock type for the StatsReader type
type StatsReader struct {
	mock.Mock
}

// RestaurantStats provides a mock function with given fields: ctx, restaurantID, now
func (_m *StatsReader) RestaurantStats(ctx context.Context, restaurantID uuid.UUID, now time.Time) (*domain.RestaurantStats, error) {
	ret := _m.Called(ctx, restaurantID, now)

	var r0 *domain.RestaurantStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RestaurantStats)
	}

	return r0, ret.Error(1)
}

// NewStatsReader creates a new instance of StatsReader. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStatsReader(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsReader {
	m := &StatsReader{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
