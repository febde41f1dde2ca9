package mocks

import (
	"context"

	"restaurant-saas/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// StatsStore is a mock type for the StatsStore type
type StatsStore struct {
	mock.Mock
}

// ForgetProcessed provides a mock function with given fields: ctx, eventID
func (_m *StatsStore) ForgetProcessed(ctx context.Context, eventID uuid.UUID) error {
	ret := _m.Called(ctx, eventID)

	return ret.Error(0)
}

// MarkProcessed provides a mock function with given fields: ctx, eventID
func (_m *StatsStore) MarkProcessed(ctx context.Context, eventID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, eventID)

	return ret.Bool(0), ret.Error(1)
}

// RecordOrderCreated provides a mock function with given fields: ctx, event
func (_m *StatsStore) RecordOrderCreated(ctx context.Context, event events.OrderEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

// RecordStatusChange provides a mock function with given fields: ctx, event
func (_m *StatsStore) RecordStatusChange(ctx context.Context, event events.OrderEvent) error {
	ret := _m.Called(ctx, event)

	return ret.Error(0)
}

// NewStatsStore creates a new instance of StatsStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStatsStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *StatsStore {
	m := &StatsStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
