package storage

import (
	"context"
	"fmt"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

var ownerQueries = map[domain.EntityKind]string{
	domain.KindRestaurant: `SELECT owner_id FROM restaurants WHERE id = $1`,
	domain.KindCategory: `
		SELECT r.owner_id
		FROM menu_categories c
		JOIN restaurants r ON r.id = c.restaurant_id
		WHERE c.id = $1`,
	domain.KindItem: `
		SELECT r.owner_id
		FROM menu_items i
		JOIN restaurants r ON r.id = i.restaurant_id
		WHERE i.id = $1`,
	domain.KindSide: `
		SELECT r.owner_id
		FROM menu_item_sides s
		JOIN menu_items i ON i.id = s.menu_item_id
		JOIN restaurants r ON r.id = i.restaurant_id
		WHERE s.id = $1`,
	domain.KindOrder: `
		SELECT r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = $1`,
}

// ResolveOwner walks the entity up to its restaurant and returns the restaurant's owner.
func (r *PostgresRepository) ResolveOwner(ctx context.Context, kind domain.EntityKind, id uuid.UUID) (uuid.UUID, error) {
	query, ok := ownerQueries[kind]
	if !ok {
		return uuid.Nil, fmt.Errorf("unknown entity kind %q", kind)
	}

	var ownerID uuid.UUID
	if err := r.DB.QueryRowContext(ctx, query, id).Scan(&ownerID); err != nil {
		return uuid.Nil, notFound(err)
	}
	return ownerID, nil
}
