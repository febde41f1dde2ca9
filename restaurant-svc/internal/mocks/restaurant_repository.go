package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// RestaurantRepository is a mock type for the RestaurantRepository type
type RestaurantRepository struct {
	mock.Mock
}

// CreateRestaurant provides a mock function with given fields: ctx, ownerID, req
func (_m *RestaurantRepository) CreateRestaurant(ctx context.Context, ownerID uuid.UUID, req *domain.RestaurantCreate) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, ownerID, req)

	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}

	return r0, ret.Error(1)
}

// ListRestaurantsByOwner provides a mock function with given fields: ctx, ownerID
func (_m *RestaurantRepository) ListRestaurantsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Restaurant, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 []domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Restaurant)
	}

	return r0, ret.Error(1)
}

// GetActiveRestaurantBySlug provides a mock function with given fields: ctx, slug
func (_m *RestaurantRepository) GetActiveRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, slug)

	var r0 *domain.Restaurant
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}

	return r0, ret.Error(1)
}

// OwnerHasRestaurant provides a mock function with given fields: ctx, ownerID
func (_m *RestaurantRepository) OwnerHasRestaurant(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	ret := _m.Called(ctx, ownerID)

	var r0 bool
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	return r0, ret.Error(1)
}

// MarkOnboarded provides a mock function with given fields: ctx, userID
func (_m *RestaurantRepository) MarkOnboarded(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	return ret.Error(0)
}

// NewRestaurantRepository creates a new instance of RestaurantRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
