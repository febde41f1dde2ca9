package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ProfileRepository is a mock type for the ProfileRepository type
type ProfileRepository struct {
	mock.Mock
}

// GetProfile provides a mock function with given fields: ctx, id
func (_m *ProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Profile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Profile)
	}

	return r0, ret.Error(1)
}

// UpdateProfile provides a mock function with given fields: ctx, id, u
func (_m *ProfileRepository) UpdateProfile(ctx context.Context, id uuid.UUID, u *domain.ProfileUpdate) (*domain.Profile, error) {
	ret := _m.Called(ctx, id, u)

	var r0 *domain.Profile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Profile)
	}

	return r0, ret.Error(1)
}

// NewProfileRepository creates a new instance of ProfileRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewProfileRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProfileRepository {
	m := &ProfileRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
