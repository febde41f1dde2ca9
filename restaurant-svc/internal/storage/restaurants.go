package storage

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

const restaurantColumns = `id, owner_id, name, slug, description, cuisine_type, phone, whatsapp, email,
	address, city, country, logo_url, primary_color, is_active, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(row rowScanner) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.OwnerID, &rest.Name, &rest.Slug, &rest.Description, &rest.CuisineType,
		&rest.Phone, &rest.Whatsapp, &rest.Email, &rest.Address, &rest.City, &rest.Country,
		&rest.LogoURL, &rest.PrimaryColor, &rest.IsActive, &rest.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, ownerID uuid.UUID, req *domain.RestaurantCreate) (*domain.Restaurant, error) {
	row := r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (owner_id, name, slug, description, cuisine_type, phone, whatsapp, email,
			address, city, country, logo_url, primary_color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+restaurantColumns,
		ownerID, req.Name, req.Slug, req.Description, req.CuisineType, req.Phone, req.Whatsapp, req.Email,
		req.Address, req.City, req.Country, req.LogoURL, req.PrimaryColor)

	rest, err := scanRestaurant(row)
	if isUniqueViolation(err) {
		return nil, domain.ErrConflict
	}
	return rest, err
}

func (r *PostgresRepository) ListRestaurantsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE owner_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, *rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	rest, err := scanRestaurant(row)
	return rest, notFound(err)
}

// GetActiveRestaurantBySlug only sees restaurants that are open to the public.
func (r *PostgresRepository) GetActiveRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants
		WHERE slug = $1 AND is_active = TRUE`, slug)
	rest, err := scanRestaurant(row)
	return rest, notFound(err)
}

func (r *PostgresRepository) OwnerHasRestaurant(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM restaurants WHERE owner_id = $1)`, ownerID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) RestaurantExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}
