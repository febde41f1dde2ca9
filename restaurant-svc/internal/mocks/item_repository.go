package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ItemRepository is a mock type for the ItemRepository type
type ItemRepository struct {
	mock.Mock
}

// GetCategory provides a mock function with given fields: ctx, id
func (_m *ItemRepository) GetCategory(ctx context.Context, id uuid.UUID) (*domain.MenuCategory, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.MenuCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuCategory)
	}

	return r0, ret.Error(1)
}

// CreateItem provides a mock function with given fields: ctx, i
func (_m *ItemRepository) CreateItem(ctx context.Context, i *domain.MenuItem) error {
	ret := _m.Called(ctx, i)

	return ret.Error(0)
}

// ListItems provides a mock function with given fields: ctx, restaurantID
func (_m *ItemRepository) ListItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// GetItem provides a mock function with given fields: ctx, id
func (_m *ItemRepository) GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// UpdateItem provides a mock function with given fields: ctx, id, u
func (_m *ItemRepository) UpdateItem(ctx context.Context, id uuid.UUID, u *domain.ItemUpdate) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, id, u)

	var r0 *domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// DeleteItem provides a mock function with given fields: ctx, id
func (_m *ItemRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewItemRepository creates a new instance of ItemRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewItemRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ItemRepository {
	m := &ItemRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
