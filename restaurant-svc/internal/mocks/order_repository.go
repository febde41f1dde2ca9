package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

// RestaurantExists provides a mock function with given fields: ctx, id
func (_m *OrderRepository) RestaurantExists(ctx context.Context, id uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, id)

	var r0 bool
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	return r0, ret.Error(1)
}

// FindMenuItems provides a mock function with given fields: ctx, ids
func (_m *OrderRepository) FindMenuItems(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, ids)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// FindSides provides a mock function with given fields: ctx, ids
func (_m *OrderRepository) FindSides(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItemSide, error) {
	ret := _m.Called(ctx, ids)

	var r0 []domain.MenuItemSide
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItemSide)
	}

	return r0, ret.Error(1)
}

// CreateOrder provides a mock function with given fields: ctx, order
func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)

	return ret.Error(0)
}

// GetOrder provides a mock function with given fields: ctx, id
func (_m *OrderRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

// FindOrdersInRange provides a mock function with given fields: ctx, lo, hi
func (_m *OrderRepository) FindOrdersInRange(ctx context.Context, lo uuid.UUID, hi uuid.UUID) ([]domain.Order, error) {
	ret := _m.Called(ctx, lo, hi)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}

	return r0, ret.Error(1)
}

// ListOrdersByRestaurant provides a mock function with given fields: ctx, restaurantID
func (_m *OrderRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}

	return r0, ret.Error(1)
}

// UpdateOrderStatus provides a mock function with given fields: ctx, id, from, to
func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from domain.OrderStatus, to domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, id, from, to)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	return r0, ret.Error(1)
}

// LoadOrderItems provides a mock function with given fields: ctx, orderID
func (_m *OrderRepository) LoadOrderItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	ret := _m.Called(ctx, orderID)

	var r0 []domain.OrderItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.OrderItem)
	}

	return r0, ret.Error(1)
}

// NewOrderRepository creates a new instance of OrderRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
