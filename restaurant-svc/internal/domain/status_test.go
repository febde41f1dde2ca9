package domain_test

import (
	"testing"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, status := range []domain.OrderStatus{"pending", "confirmed", "preparing", "ready", "delivering", "completed", "canceled"} {
		assert.True(t, domain.ValidStatus(status), status)
	}
	for _, status := range []domain.OrderStatus{"", "cooking", "PENDING", "delivered", "cancelled"} {
		assert.False(t, domain.ValidStatus(status), status)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to domain.OrderStatus
		expected bool
	}{
		{"pending to confirmed", domain.StatusPending, domain.StatusConfirmed, true},
		{"confirmed to preparing", domain.StatusConfirmed, domain.StatusPreparing, true},
		{"ready to delivering", domain.StatusReady, domain.StatusDelivering, true},
		{"delivering to completed", domain.StatusDelivering, domain.StatusCompleted, true},
		{"cancel pending", domain.StatusPending, domain.StatusCanceled, true},
		{"cancel delivering", domain.StatusDelivering, domain.StatusCanceled, true},
		{"skip a step", domain.StatusPending, domain.StatusReady, false},
		{"go backwards", domain.StatusReady, domain.StatusConfirmed, false},
		{"same status", domain.StatusPending, domain.StatusPending, false},
		{"leave completed", domain.StatusCompleted, domain.StatusCanceled, false},
		{"leave canceled", domain.StatusCanceled, domain.StatusPending, false},
		{"unknown target", domain.StatusPending, "cooking", false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, domain.CanTransition(testCase.from, testCase.to))
		})
	}
}
