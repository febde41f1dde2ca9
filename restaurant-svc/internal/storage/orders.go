package storage

import (
	"context"
	"database/sql"
	"errors"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const orderColumns = `id, restaurant_id, customer_name, customer_phone, delivery_address, delivery_note,
	total_amount, status, created_at`

func scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(&o.ID, &o.RestaurantID, &o.CustomerName, &o.CustomerPhone, &o.DeliveryAddress,
		&o.DeliveryNote, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder writes the order, its lines and their sides in one transaction.
// Generated ids and timestamps are written back into order.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (restaurant_id, customer_name, customer_phone, delivery_address, delivery_note, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, 0, $6)
		RETURNING id, created_at`,
		order.RestaurantID, order.CustomerName, order.CustomerPhone, order.DeliveryAddress, order.DeliveryNote, order.Status,
	).Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price, total_price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.Quantity, item.Price, item.TotalPrice,
		).Scan(&item.ID); err != nil {
			return err
		}

		for j := range item.Sides {
			side := &item.Sides[j]
			side.OrderItemID = item.ID
			if err := tx.QueryRowContext(ctx, `
				INSERT INTO order_item_sides (order_item_id, menu_item_side_id, extra_price)
				VALUES ($1, $2, $3)
				RETURNING id`,
				side.OrderItemID, side.MenuItemSideID, side.ExtraPrice,
			).Scan(&side.ID); err != nil {
				return err
			}
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE orders SET total_amount = $1 WHERE id = $2`, order.TotalAmount, order.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	o, err := scanOrder(r.DB.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	return o, notFound(err)
}

// FindOrdersInRange returns orders whose id lies within [lo, hi], oldest first.
func (r *PostgresRepository) FindOrdersInRange(ctx context.Context, lo, hi uuid.UUID) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE id >= $1 AND id <= $2
		ORDER BY created_at ASC, id ASC`, lo, hi)
}

func (r *PostgresRepository) ListOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at DESC, id DESC`, restaurantID)
}

func (r *PostgresRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

// UpdateOrderStatus moves the order from one status to another. It reports ErrStaleRead when
// the order is no longer in status from.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (*domain.Order, error) {
	o, err := scanOrder(r.DB.QueryRowContext(ctx, `
		UPDATE orders SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING `+orderColumns, to, id, from))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrStaleRead
	}
	return o, err
}

// LoadOrderItems returns the lines of an order with current catalog names, sides included.
func (r *PostgresRepository) LoadOrderItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.menu_item_id, oi.quantity, oi.price, oi.total_price, mi.name
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.created_at ASC, oi.id ASC`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.Price,
			&item.TotalPrice, &item.ItemName); err != nil {
			return nil, err
		}
		item.Sides = []domain.OrderItemSide{}
		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return items, nil
	}

	itemIDs := make([]uuid.UUID, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	sideRows, err := r.DB.QueryContext(ctx, `
		SELECT ois.id, ois.order_item_id, ois.menu_item_side_id, ois.extra_price, mis.name
		FROM order_item_sides ois
		LEFT JOIN menu_item_sides mis ON mis.id = ois.menu_item_side_id
		WHERE ois.order_item_id = ANY($1::uuid[])
		ORDER BY ois.created_at ASC, ois.id ASC`, pq.Array(uuidStrings(itemIDs)))
	if err != nil {
		return nil, err
	}
	defer sideRows.Close()

	for sideRows.Next() {
		var side domain.OrderItemSide
		if err := sideRows.Scan(&side.ID, &side.OrderItemID, &side.MenuItemSideID, &side.ExtraPrice, &side.SideName); err != nil {
			return nil, err
		}
		if i, ok := index[side.OrderItemID]; ok {
			items[i].Sides = append(items[i].Sides, side)
		}
	}
	return items, sideRows.Err()
}
