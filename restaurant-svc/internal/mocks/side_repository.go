package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// SideRepository is a mock type for the SideRepository type
type SideRepository struct {
	mock.Mock
}

// CreateSide provides a mock function with given fields: ctx, s
func (_m *SideRepository) CreateSide(ctx context.Context, s *domain.MenuItemSide) error {
	ret := _m.Called(ctx, s)

	return ret.Error(0)
}

// ListSides provides a mock function with given fields: ctx, itemID
func (_m *SideRepository) ListSides(ctx context.Context, itemID uuid.UUID) ([]domain.MenuItemSide, error) {
	ret := _m.Called(ctx, itemID)

	var r0 []domain.MenuItemSide
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItemSide)
	}

	return r0, ret.Error(1)
}

// GetSide provides a mock function with given fields: ctx, id
func (_m *SideRepository) GetSide(ctx context.Context, id uuid.UUID) (*domain.MenuItemSide, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.MenuItemSide
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItemSide)
	}

	return r0, ret.Error(1)
}

// UpdateSide provides a mock function with given fields: ctx, id, u
func (_m *SideRepository) UpdateSide(ctx context.Context, id uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error) {
	ret := _m.Called(ctx, id, u)

	var r0 *domain.MenuItemSide
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItemSide)
	}

	return r0, ret.Error(1)
}

// DeleteSide provides a mock function with given fields: ctx, id
func (_m *SideRepository) DeleteSide(ctx context.Context, id uuid.UUID) error {
	ret := _m.Called(ctx, id)

	return ret.Error(0)
}

// NewSideRepository creates a new instance of SideRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSideRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *SideRepository {
	m := &SideRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
