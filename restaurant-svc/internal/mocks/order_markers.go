package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// OrderMarkers is a mock type for the OrderMarkers type
type OrderMarkers struct {
	mock.Mock
}

// OrderMarkerKey provides a mock function with given fields: restaurantID, idempotencyKey
func (_m *OrderMarkers) OrderMarkerKey(restaurantID uuid.UUID, idempotencyKey string) string {
	ret := _m.Called(restaurantID, idempotencyKey)

	var r0 string
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// LookupOrder provides a mock function with given fields: ctx, key
func (_m *OrderMarkers) LookupOrder(ctx context.Context, key string) (uuid.UUID, bool, error) {
	ret := _m.Called(ctx, key)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}

	var r1 bool
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(bool)
	}

	return r0, r1, ret.Error(2)
}

// RememberOrder provides a mock function with given fields: ctx, key, orderID
func (_m *OrderMarkers) RememberOrder(ctx context.Context, key string, orderID uuid.UUID) error {
	ret := _m.Called(ctx, key, orderID)

	return ret.Error(0)
}

// NewOrderMarkers creates a new instance of OrderMarkers. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderMarkers(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderMarkers {
	m := &OrderMarkers{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
