// Package events holds the order event contract shared by restaurant-svc (producer)
// and stats-svc (consumer), together with the redis key layout of the aggregates.
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeOrderCreated       = "order_created"
	TypeOrderStatusChanged = "order_status_changed"
)

type OrderEvent struct {
	EventID        uuid.UUID        `json:"event_id"`
	Type           string           `json:"type"`
	OrderID        uuid.UUID        `json:"order_id"`
	RestaurantID   uuid.UUID        `json:"restaurant_id"`
	Status         string           `json:"status"`
	PreviousStatus string           `json:"previous_status,omitempty"`
	TotalAmount    decimal.Decimal  `json:"total_amount"`
	Items          []OrderEventItem `json:"items,omitempty"`
	OrderCreatedAt time.Time        `json:"order_created_at"`
	Timestamp      time.Time        `json:"timestamp"`
}

type OrderEventItem struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int       `json:"quantity"`
}

// Day buckets are UTC calendar dates.
func DayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

func DailyStatsKey(restaurantID uuid.UUID, day string) string {
	return fmt.Sprintf("stats:daily:%s:%s", day, restaurantID)
}

func TotalStatsKey(restaurantID uuid.UUID) string {
	return fmt.Sprintf("stats:total:%s", restaurantID)
}

func DailyItemsKey(restaurantID uuid.UUID, day string) string {
	return fmt.Sprintf("stats:items:daily:%s:%s", day, restaurantID)
}

func TotalItemsKey(restaurantID uuid.UUID) string {
	return fmt.Sprintf("stats:items:total:%s", restaurantID)
}

func ProcessedEventKey(eventID uuid.UUID) string {
	return fmt.Sprintf("stats:processed:%s", eventID)
}

// Hash fields of the daily and total aggregates.
const (
	FieldOrders       = "orders"
	FieldRevenueCents = "revenue_cents"
	StatusFieldPrefix = "status:"
)
