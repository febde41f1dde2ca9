package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RestaurantPublic is the subset of a restaurant anyone may read by slug.
type RestaurantPublic struct {
	ID           uuid.UUID `json:"id"`
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
}

func (r *Restaurant) Public() RestaurantPublic {
	return RestaurantPublic{
		ID:           r.ID,
		Name:         r.Name,
		Slug:         r.Slug,
		Description:  r.Description,
		CuisineType:  r.CuisineType,
		Phone:        r.Phone,
		Whatsapp:     r.Whatsapp,
		Email:        r.Email,
		Address:      r.Address,
		City:         r.City,
		Country:      r.Country,
		LogoURL:      r.LogoURL,
		PrimaryColor: r.PrimaryColor,
	}
}

type PublicRestaurantInfo struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	Phone        *string `json:"phone"`
	Whatsapp     *string `json:"whatsapp"`
}

type PublicMenuRestaurant struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	Phone        *string `json:"phone"`
	Whatsapp     *string `json:"whatsapp"`
}

type PublicMenu struct {
	Restaurant PublicMenuRestaurant `json:"restaurant"`
	Menu       []PublicCategory     `json:"menu"`
}

type PublicCategory struct {
	CategoryID uuid.UUID    `json:"category_id"`
	Name       string       `json:"name"`
	Items      []PublicItem `json:"items"`
}

type PublicItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url"`
	Sides       []PublicSide    `json:"sides"`
}

type PublicSide struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	ExtraPrice decimal.Decimal `json:"extra_price"`
}

// OrderTracking is what a customer sees when looking an order up by its code.
type OrderTracking struct {
	OrderCode       string          `json:"order_code"`
	Status          OrderStatus     `json:"status"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	DeliveryAddress string          `json:"delivery_address"`
	CreatedAt       time.Time       `json:"created_at"`
	Items           []OrderItem     `json:"items"`
}

func (o *Order) Tracking() OrderTracking {
	return OrderTracking{
		OrderCode:       o.Code(),
		Status:          o.Status,
		TotalPrice:      o.TotalAmount,
		DeliveryAddress: o.DeliveryAddress,
		CreatedAt:       o.CreatedAt,
		Items:           o.Items,
	}
}
