package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// PublicRepository is a mock type for the PublicRepository type
type PublicRepository struct {
	mock.Mock
}

// GetActiveRestaurantBySlug provides a mock function with given fields: ctx, slug
func (_m *PublicRepository) GetActiveRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, slug)

	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}

	return r0, ret.Error(1)
}

// ListActiveCategories provides a mock function with given fields: ctx, restaurantID
func (_m *PublicRepository) ListActiveCategories(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.MenuCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuCategory)
	}

	return r0, ret.Error(1)
}

// ListAvailableItems provides a mock function with given fields: ctx, restaurantID
func (_m *PublicRepository) ListAvailableItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.MenuItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}

	return r0, ret.Error(1)
}

// ListSidesForItems provides a mock function with given fields: ctx, itemIDs
func (_m *PublicRepository) ListSidesForItems(ctx context.Context, itemIDs []uuid.UUID) ([]domain.MenuItemSide, error) {
	ret := _m.Called(ctx, itemIDs)

	var r0 []domain.MenuItemSide
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItemSide)
	}

	return r0, ret.Error(1)
}

// NewPublicRepository creates a new instance of PublicRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPublicRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PublicRepository {
	m := &PublicRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
