package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantStats struct {
	RestaurantID uuid.UUID   `json:"restaurant_id"`
	Day          string      `json:"day"`
	Today        StatsWindow `json:"today"`
	AllTime      StatsWindow `json:"all_time"`
}

type StatsWindow struct {
	Orders   int64            `json:"orders"`
	Revenue  decimal.Decimal  `json:"revenue"`
	ByStatus map[string]int64 `json:"by_status,omitempty"`
	TopItems []ItemPopularity `json:"top_items"`
}

type ItemPopularity struct {
	MenuItemID uuid.UUID `json:"menu_item_id"`
	Quantity   int64     `json:"quantity"`
}
