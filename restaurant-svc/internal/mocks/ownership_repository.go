package mocks

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// OwnershipRepository is a mock type for the OwnershipRepository type
type OwnershipRepository struct {
	mock.Mock
}

// ResolveOwner provides a mock function with given fields: ctx, kind, id
func (_m *OwnershipRepository) ResolveOwner(ctx context.Context, kind domain.EntityKind, id uuid.UUID) (uuid.UUID, error) {
	ret := _m.Called(ctx, kind, id)

	var r0 uuid.UUID
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(uuid.UUID)
	}

	return r0, ret.Error(1)
}

// NewOwnershipRepository creates a new instance of OwnershipRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOwnershipRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OwnershipRepository {
	m := &OwnershipRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
