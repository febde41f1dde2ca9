package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// CategoryRepository is a mock type for the CategoryRepository type
type CategoryRepository struct {
	mock.Mock
}

// CreateCategory provides a mock function with given fields: ctx, c
func (_m *CategoryRepository) CreateCategory(ctx context.Context, c *domain.MenuCategory) error {
	ret := _m.Called(ctx, c)

	return ret.Error(0)
}

// ListCategories provides a mock function with given fields: ctx, restaurantID
func (_m *CategoryRepository) ListCategories(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.MenuCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuCategory)
	}

	return r0, ret.Error(1)
}

// UpdateCategory provides a mock function with given fields: ctx, id, u
func (_m *CategoryRepository) UpdateCategory(ctx context.Context, id uuid.UUID, u *domain.CategoryUpdate) (*domain.MenuCategory, error) {
	ret := _m.Called(ctx, id, u)

	var r0 *domain.MenuCategory
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuCategory)
	}

	return r0, ret.Error(1)
}

// DeleteCategory provides a mock function with given fields: ctx, id
func (_m *CategoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewCategoryRepository creates a new instance of CategoryRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
