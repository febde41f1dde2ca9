package domain

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantCreate struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Slug         string  `json:"slug" validate:"required,slug,max=100"`
	Description  *string `json:"description"`
	CuisineType  *string `json:"cuisine_type"`
	Phone        *string `json:"phone"`
	Whatsapp     *string `json:"whatsapp"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Country      *string `json:"country"`
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
}

type ProfileUpdate struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.FullName == nil && u.Phone == nil && u.AvatarURL == nil
}

type CategoryCreate struct {
	RestaurantID uuid.UUID `json:"restaurant_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=100"`
	Position     int       `json:"position"`
	IsActive     *bool     `json:"is_active"`
}

type CategoryUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Position *int    `json:"position"`
	IsActive *bool   `json:"is_active"`
}

func (u CategoryUpdate) IsEmpty() bool {
	return u.Name == nil && u.Position == nil && u.IsActive == nil
}

type ItemCreate struct {
	RestaurantID uuid.UUID       `json:"restaurant_id" validate:"required"`
	CategoryID   uuid.UUID       `json:"category_id" validate:"required"`
	Name         string          `json:"name" validate:"required,max=200"`
	Description  *string         `json:"description"`
	BasePrice    decimal.Decimal `json:"base_price" validate:"gte=0"`
	ImageURL     *string         `json:"image_url"`
	IsAvailable  *bool           `json:"is_available"`
	Position     int             `json:"position"`
}

type ItemUpdate struct {
	CategoryID  *uuid.UUID       `json:"category_id"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	BasePrice   *decimal.Decimal `json:"base_price" validate:"omitempty,gte=0"`
	ImageURL    *string          `json:"image_url"`
	IsAvailable *bool            `json:"is_available"`
	Position    *int             `json:"position"`
}

func (u ItemUpdate) IsEmpty() bool {
	return u.CategoryID == nil && u.Name == nil && u.Description == nil && u.BasePrice == nil &&
		u.ImageURL == nil && u.IsAvailable == nil && u.Position == nil
}

type SideCreate struct {
	Name       string          `json:"name" validate:"required,max=100"`
	ExtraPrice decimal.Decimal `json:"extra_price" validate:"gte=0"`
	IsRequired bool            `json:"is_required"`
	Position   int             `json:"position"`
	ImageURL   *string         `json:"image_url"`
}

type SideUpdate struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=100"`
	ExtraPrice *decimal.Decimal `json:"extra_price" validate:"omitempty,gte=0"`
	IsRequired *bool            `json:"is_required"`
	Position   *int             `json:"position"`
	ImageURL   *string          `json:"image_url"`
}

func (u SideUpdate) IsEmpty() bool {
	return u.Name == nil && u.ExtraPrice == nil && u.IsRequired == nil && u.Position == nil && u.ImageURL == nil
}

type OrderCreate struct {
	RestaurantID    uuid.UUID         `json:"restaurant_id" validate:"required"`
	CustomerName    string            `json:"customer_name" validate:"required,min=1,max=100"`
	CustomerPhone   string            `json:"customer_phone" validate:"required,min=8,max=20"`
	DeliveryAddress string            `json:"delivery_address" validate:"required,min=5"`
	DeliveryNote    *string           `json:"delivery_note"`
	Items           []OrderLineCreate `json:"items" validate:"required,min=1,dive"`
}

type OrderLineCreate struct {
	MenuItemID uuid.UUID         `json:"menu_item_id" validate:"required"`
	Quantity   int               `json:"quantity" validate:"gt=0"`
	Price      decimal.Decimal   `json:"price" validate:"gte=0"`
	Sides      []OrderSideCreate `json:"sides" validate:"dive"`
}

type OrderSideCreate struct {
	MenuItemSideID uuid.UUID       `json:"menu_item_side_id" validate:"required"`
	ExtraPrice     decimal.Decimal `json:"extra_price" validate:"gte=0"`
}

// UnmarshalJSON accepts the side reference either as "menu_item_side_id" or as "id".
func (s *OrderSideCreate) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             *uuid.UUID      `json:"id"`
		MenuItemSideID *uuid.UUID      `json:"menu_item_side_id"`
		ExtraPrice     decimal.Decimal `json:"extra_price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.ExtraPrice = raw.ExtraPrice
	switch {
	case raw.MenuItemSideID != nil:
		s.MenuItemSideID = *raw.MenuItemSideID
	case raw.ID != nil:
		s.MenuItemSideID = *raw.ID
	}
	return nil
}

type StatusUpdate struct {
	Status OrderStatus `json:"status" validate:"required"`
}
