package storage

import (
	"context"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	categoryColumns = `id, restaurant_id, name, position, is_active, created_at`
	itemColumns     = `id, restaurant_id, category_id, name, description, base_price, image_url, is_available, position, created_at`
	sideColumns     = `id, menu_item_id, name, extra_price, is_required, position, image_url, created_at`
)

func scanCategory(row rowScanner) (*domain.MenuCategory, error) {
	var c domain.MenuCategory
	if err := row.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Position, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanItem(row rowScanner) (*domain.MenuItem, error) {
	var i domain.MenuItem
	if err := row.Scan(&i.ID, &i.RestaurantID, &i.CategoryID, &i.Name, &i.Description, &i.BasePrice,
		&i.ImageURL, &i.IsAvailable, &i.Position, &i.CreatedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

func scanSide(row rowScanner) (*domain.MenuItemSide, error) {
	var s domain.MenuItemSide
	if err := row.Scan(&s.ID, &s.MenuItemID, &s.Name, &s.ExtraPrice, &s.IsRequired, &s.Position,
		&s.ImageURL, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.MenuCategory) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_categories (restaurant_id, name, position, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		c.RestaurantID, c.Name, c.Position, c.IsActive).Scan(&c.ID, &c.CreatedAt)
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error) {
	return r.queryCategories(ctx, `
		SELECT `+categoryColumns+`
		FROM menu_categories
		WHERE restaurant_id = $1
		ORDER BY position ASC, created_at ASC, id ASC`, restaurantID)
}

func (r *PostgresRepository) ListActiveCategories(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error) {
	return r.queryCategories(ctx, `
		SELECT `+categoryColumns+`
		FROM menu_categories
		WHERE restaurant_id = $1 AND is_active = TRUE
		ORDER BY position ASC, created_at ASC, id ASC`, restaurantID)
}

func (r *PostgresRepository) queryCategories(ctx context.Context, query string, args ...any) ([]domain.MenuCategory, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.MenuCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id uuid.UUID) (*domain.MenuCategory, error) {
	c, err := scanCategory(r.DB.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM menu_categories WHERE id = $1`, id))
	return c, notFound(err)
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, id uuid.UUID, u *domain.CategoryUpdate) (*domain.MenuCategory, error) {
	var set assignments
	if u.Name != nil {
		set.set("name", *u.Name)
	}
	if u.Position != nil {
		set.set("position", *u.Position)
	}
	if u.IsActive != nil {
		set.set("is_active", *u.IsActive)
	}

	query, args := set.update("menu_categories", categoryColumns, id)
	c, err := scanCategory(r.DB.QueryRowContext(ctx, query, args...))
	return c, notFound(err)
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "menu_categories", id)
}

func (r *PostgresRepository) CreateItem(ctx context.Context, i *domain.MenuItem) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (restaurant_id, category_id, name, description, base_price, image_url, is_available, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		i.RestaurantID, i.CategoryID, i.Name, i.Description, i.BasePrice, i.ImageURL, i.IsAvailable, i.Position,
	).Scan(&i.ID, &i.CreatedAt)
}

func (r *PostgresRepository) ListItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	return r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY position ASC, created_at ASC, id ASC`, restaurantID)
}

func (r *PostgresRepository) ListAvailableItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	return r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE
		ORDER BY position ASC, created_at ASC, id ASC`, restaurantID)
}

// FindMenuItems returns the items among ids that exist, in any restaurant.
func (r *PostgresRepository) FindMenuItems(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItem, error) {
	return r.queryItems(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = ANY($1::uuid[])`, pq.Array(uuidStrings(ids)))
}

func (r *PostgresRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		i, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	i, err := scanItem(r.DB.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM menu_items WHERE id = $1`, id))
	return i, notFound(err)
}

func (r *PostgresRepository) UpdateItem(ctx context.Context, id uuid.UUID, u *domain.ItemUpdate) (*domain.MenuItem, error) {
	var set assignments
	if u.CategoryID != nil {
		set.set("category_id", *u.CategoryID)
	}
	if u.Name != nil {
		set.set("name", *u.Name)
	}
	if u.Description != nil {
		set.set("description", *u.Description)
	}
	if u.BasePrice != nil {
		set.set("base_price", *u.BasePrice)
	}
	if u.ImageURL != nil {
		set.set("image_url", *u.ImageURL)
	}
	if u.IsAvailable != nil {
		set.set("is_available", *u.IsAvailable)
	}
	if u.Position != nil {
		set.set("position", *u.Position)
	}

	query, args := set.update("menu_items", itemColumns, id)
	i, err := scanItem(r.DB.QueryRowContext(ctx, query, args...))
	return i, notFound(err)
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "menu_items", id)
}

func (r *PostgresRepository) CreateSide(ctx context.Context, s *domain.MenuItemSide) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_item_sides (menu_item_id, name, extra_price, is_required, position, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		s.MenuItemID, s.Name, s.ExtraPrice, s.IsRequired, s.Position, s.ImageURL,
	).Scan(&s.ID, &s.CreatedAt)
}

func (r *PostgresRepository) ListSides(ctx context.Context, itemID uuid.UUID) ([]domain.MenuItemSide, error) {
	return r.querySides(ctx, `
		SELECT `+sideColumns+`
		FROM menu_item_sides
		WHERE menu_item_id = $1
		ORDER BY position ASC, created_at ASC, id ASC`, itemID)
}

func (r *PostgresRepository) ListSidesForItems(ctx context.Context, itemIDs []uuid.UUID) ([]domain.MenuItemSide, error) {
	return r.querySides(ctx, `
		SELECT `+sideColumns+`
		FROM menu_item_sides
		WHERE menu_item_id = ANY($1::uuid[])
		ORDER BY position ASC, created_at ASC, id ASC`, pq.Array(uuidStrings(itemIDs)))
}

func (r *PostgresRepository) FindSides(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItemSide, error) {
	return r.querySides(ctx, `
		SELECT `+sideColumns+`
		FROM menu_item_sides
		WHERE id = ANY($1::uuid[])`, pq.Array(uuidStrings(ids)))
}

func (r *PostgresRepository) querySides(ctx context.Context, query string, args ...any) ([]domain.MenuItemSide, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sides := []domain.MenuItemSide{}
	for rows.Next() {
		s, err := scanSide(rows)
		if err != nil {
			return nil, err
		}
		sides = append(sides, *s)
	}
	return sides, rows.Err()
}

func (r *PostgresRepository) GetSide(ctx context.Context, id uuid.UUID) (*domain.MenuItemSide, error) {
	s, err := scanSide(r.DB.QueryRowContext(ctx, `SELECT `+sideColumns+` FROM menu_item_sides WHERE id = $1`, id))
	return s, notFound(err)
}

func (r *PostgresRepository) UpdateSide(ctx context.Context, id uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error) {
	var set assignments
	if u.Name != nil {
		set.set("name", *u.Name)
	}
	if u.ExtraPrice != nil {
		set.set("extra_price", *u.ExtraPrice)
	}
	if u.IsRequired != nil {
		set.set("is_required", *u.IsRequired)
	}
	if u.Position != nil {
		set.set("position", *u.Position)
	}
	if u.ImageURL != nil {
		set.set("image_url", *u.ImageURL)
	}

	query, args := set.update("menu_item_sides", sideColumns, id)
	s, err := scanSide(r.DB.QueryRowContext(ctx, query, args...))
	return s, notFound(err)
}

func (r *PostgresRepository) DeleteSide(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "menu_item_sides", id)
}

func (r *PostgresRepository) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
