package domain

import "errors"

// Storage reports these; services translate them into API errors.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrStaleRead = errors.New("row changed since it was read")
)

// EntityKind names an owned entity for ownership resolution.
type EntityKind string

const (
	KindRestaurant EntityKind = "restaurant"
	KindCategory   EntityKind = "category"
	KindItem       EntityKind = "menu item"
	KindSide       EntityKind = "side"
	KindOrder      EntityKind = "order"
)
