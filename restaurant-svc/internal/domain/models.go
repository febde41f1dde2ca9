package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

type Profile struct {
	ID          uuid.UUID `json:"id"`
	FullName    *string   `json:"full_name"`
	Phone       *string   `json:"phone"`
	AvatarURL   *string   `json:"avatar_url"`
	IsOnboarded bool      `json:"is_onboarded"`
}

type Restaurant struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	CuisineType  *string   `json:"cuisine_type"`
	Phone        *string   `json:"phone"`
	Whatsapp     *string   `json:"whatsapp"`
	Email        *string   `json:"email"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	Country      *string   `json:"country"`
	LogoURL      *string   `json:"logo_url"`
	PrimaryColor *string   `json:"primary_color"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuCategory struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Position     int       `json:"position"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           uuid.UUID       `json:"id"`
	RestaurantID uuid.UUID       `json:"restaurant_id"`
	CategoryID   uuid.UUID       `json:"category_id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	BasePrice    decimal.Decimal `json:"base_price"`
	ImageURL     *string         `json:"image_url"`
	IsAvailable  bool            `json:"is_available"`
	Position     int             `json:"position"`
	CreatedAt    time.Time       `json:"created_at"`
}

type MenuItemSide struct {
	ID         uuid.UUID       `json:"id"`
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Name       string          `json:"name"`
	ExtraPrice decimal.Decimal `json:"extra_price"`
	IsRequired bool            `json:"is_required"`
	Position   int             `json:"position"`
	ImageURL   *string         `json:"image_url"`
	CreatedAt  time.Time       `json:"created_at"`
}

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusPreparing  OrderStatus = "preparing"
	StatusReady      OrderStatus = "ready"
	StatusDelivering OrderStatus = "delivering"
	StatusCompleted  OrderStatus = "completed"
	StatusCanceled   OrderStatus = "canceled"
)

type Order struct {
	ID              uuid.UUID       `json:"id"`
	RestaurantID    uuid.UUID       `json:"restaurant_id"`
	CustomerName    string          `json:"customer_name"`
	CustomerPhone   string          `json:"customer_phone"`
	DeliveryAddress string          `json:"delivery_address"`
	DeliveryNote    *string         `json:"delivery_note"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItem     `json:"items"`
}

// OrderItem snapshots the unit price at the time of ordering.
type OrderItem struct {
	ID         uuid.UUID       `json:"id"`
	OrderID    uuid.UUID       `json:"order_id"`
	MenuItemID uuid.UUID       `json:"menu_item_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	ItemName   *string         `json:"item_name"`
	Sides      []OrderItemSide `json:"sides"`
}

type OrderItemSide struct {
	ID             uuid.UUID       `json:"id"`
	OrderItemID    uuid.UUID       `json:"order_item_id"`
	MenuItemSideID uuid.UUID       `json:"menu_item_side_id"`
	ExtraPrice     decimal.Decimal `json:"extra_price"`
	SideName       *string         `json:"side_name"`
}

// Code is the short public tracking code of the order.
func (o *Order) Code() string {
	return o.ID.String()[:8]
}
