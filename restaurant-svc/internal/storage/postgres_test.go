package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

var orderCols = []string{"id", "restaurant_id", "customer_name", "customer_phone", "delivery_address",
	"delivery_note", "total_amount", "status", "created_at"}

func TestEnsureSchema(t *testing.T) {
	repo, mock := newMockRepo(t)
	for range schema {
		mock.ExpectExec(".*").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_ReportsStatement(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("CREATE EXTENSION").WillReturnError(errors.New("permission denied"))

	err := repo.EnsureSchema(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CREATE EXTENSION IF NOT EXISTS pgcrypto")
}

func TestCreateRestaurant_SlugTaken(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO restaurants").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.CreateRestaurant(context.Background(), uuid.New(), &domain.RestaurantCreate{Name: "Le Bistro", Slug: "le-bistro"})

	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRestaurant_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM restaurants WHERE id = \\$1").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRestaurant(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateCategory_OnlySetsProvidedFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	restaurantID := uuid.New()
	name := "Drinks"
	active := false

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE menu_categories SET name = $1, is_active = $2 WHERE id = $3 RETURNING")).
		WithArgs(name, active, id).
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "name", "position", "is_active", "created_at"}).
			AddRow(id.String(), restaurantID.String(), name, 2, false, time.Now()))

	category, err := repo.UpdateCategory(context.Background(), id, &domain.CategoryUpdate{Name: &name, IsActive: &active})

	require.NoError(t, err)
	assert.Equal(t, "Drinks", category.Name)
	assert.Equal(t, restaurantID, category.RestaurantID)
	assert.False(t, category.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteItem_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	id := uuid.New()
	mock.ExpectExec("DELETE FROM menu_items WHERE id = \\$1").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteItem(context.Background(), id), domain.ErrNotFound)
}

func TestResolveOwner(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		kind    domain.EntityKind
		pattern string
		rows    *sqlmock.Rows
		wantErr error
	}{
		{"restaurant", domain.KindRestaurant, "SELECT owner_id FROM restaurants", sqlmock.NewRows([]string{"owner_id"}).AddRow(ownerID.String()), nil},
		{"category", domain.KindCategory, "FROM menu_categories c\\s+JOIN restaurants", sqlmock.NewRows([]string{"owner_id"}).AddRow(ownerID.String()), nil},
		{"side walks through item", domain.KindSide, "FROM menu_item_sides s\\s+JOIN menu_items i", sqlmock.NewRows([]string{"owner_id"}).AddRow(ownerID.String()), nil},
		{"missing order", domain.KindOrder, "FROM orders o", sqlmock.NewRows([]string{"owner_id"}), domain.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := newMockRepo(t)
			id := uuid.New()
			mock.ExpectQuery(testCase.pattern).WithArgs(id).WillReturnRows(testCase.rows)

			got, err := repo.ResolveOwner(context.Background(), testCase.kind, id)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ownerID, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateOrder_WritesEverythingInOneTransaction(t *testing.T) {
	repo, mock := newMockRepo(t)

	orderID := uuid.New()
	itemRowID := uuid.New()
	sideRowID := uuid.New()
	order := &domain.Order{
		RestaurantID:    uuid.New(),
		CustomerName:    "Awa",
		CustomerPhone:   "+237699000000",
		DeliveryAddress: "Rue de la Joie, Akwa",
		Status:          domain.StatusPending,
		TotalAmount:     decimal.NewFromInt(8000),
		Items: []domain.OrderItem{{
			MenuItemID: uuid.New(),
			Quantity:   2,
			Price:      decimal.NewFromInt(3500),
			TotalPrice: decimal.NewFromInt(8000),
			Sides:      []domain.OrderItemSide{{MenuItemSideID: uuid.New(), ExtraPrice: decimal.NewFromInt(500)}},
		}},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(order.RestaurantID, "Awa", "+237699000000", "Rue de la Joie, Akwa", nil, domain.StatusPending).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(orderID.String(), time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(orderID, order.Items[0].MenuItemID, 2, "3500", "8000").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(itemRowID.String()))
	mock.ExpectQuery("INSERT INTO order_item_sides").
		WithArgs(itemRowID, order.Items[0].Sides[0].MenuItemSideID, "500").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(sideRowID.String()))
	mock.ExpectExec("UPDATE orders SET total_amount").
		WithArgs("8000", orderID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateOrder(context.Background(), order))

	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, orderID, order.Items[0].OrderID)
	assert.Equal(t, itemRowID, order.Items[0].ID)
	assert.Equal(t, sideRowID, order.Items[0].Sides[0].ID)
	assert.Equal(t, itemRowID, order.Items[0].Sides[0].OrderItemID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrder_RollsBackOnLineFailure(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(uuid.New().String(), time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").WillReturnError(errors.New("check constraint violated"))
	mock.ExpectRollback()

	err := repo.CreateOrder(context.Background(), &domain.Order{
		RestaurantID: uuid.New(),
		Status:       domain.StatusPending,
		Items:        []domain.OrderItem{{MenuItemID: uuid.New(), Quantity: 1}},
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateOrderStatus(t *testing.T) {
	id := uuid.New()

	t.Run("moves the order", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("UPDATE orders SET status = \\$1\\s+WHERE id = \\$2 AND status = \\$3").
			WithArgs(domain.StatusConfirmed, id, domain.StatusPending).
			WillReturnRows(sqlmock.NewRows(orderCols).
				AddRow(id.String(), uuid.New().String(), "Awa", "+237699000000", "Akwa", nil, "8000.00", "confirmed", time.Now()))

		order, err := repo.UpdateOrderStatus(context.Background(), id, domain.StatusPending, domain.StatusConfirmed)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, order.Status)
		assert.True(t, decimal.NewFromInt(8000).Equal(order.TotalAmount))
	})

	t.Run("status moved underneath", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("UPDATE orders SET status").
			WillReturnRows(sqlmock.NewRows(orderCols))

		_, err := repo.UpdateOrderStatus(context.Background(), id, domain.StatusPending, domain.StatusConfirmed)

		assert.ErrorIs(t, err, domain.ErrStaleRead)
	})
}

func TestFindOrdersInRange(t *testing.T) {
	repo, mock := newMockRepo(t)
	lo := uuid.MustParse("abcd1234-0000-0000-0000-000000000000")
	hi := uuid.MustParse("abcd1234-ffff-ffff-ffff-ffffffffffff")

	mock.ExpectQuery("WHERE id >= \\$1 AND id <= \\$2").
		WithArgs(lo, hi).
		WillReturnRows(sqlmock.NewRows(orderCols).
			AddRow("abcd1234-1111-4111-8111-111111111111", uuid.New().String(), "Awa", "+237699000000", "Akwa", "Call on arrival", "100.00", "pending", time.Now()))

	orders, err := repo.FindOrdersInRange(context.Background(), lo, hi)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].DeliveryNote)
	assert.Equal(t, "Call on arrival", *orders[0].DeliveryNote)
}

func TestLoadOrderItems_AttachesSides(t *testing.T) {
	repo, mock := newMockRepo(t)
	orderID := uuid.New()
	firstLine := uuid.New()
	secondLine := uuid.New()

	mock.ExpectQuery("FROM order_items oi\\s+LEFT JOIN menu_items").
		WithArgs(orderID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "menu_item_id", "quantity", "price", "total_price", "name"}).
			AddRow(firstLine.String(), orderID.String(), uuid.New().String(), 2, "3500.00", "8000.00", "Poulet braise").
			AddRow(secondLine.String(), orderID.String(), uuid.New().String(), 1, "1000.00", "1000.00", nil))
	mock.ExpectQuery("FROM order_item_sides ois").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_item_id", "menu_item_side_id", "extra_price", "name"}).
			AddRow(uuid.New().String(), firstLine.String(), uuid.New().String(), "500.00", "Plantain"))

	items, err := repo.LoadOrderItems(context.Background(), orderID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].ItemName)
	assert.Equal(t, "Poulet braise", *items[0].ItemName)
	require.Len(t, items[0].Sides, 1)
	assert.Equal(t, "Plantain", *items[0].Sides[0].SideName)
	assert.Nil(t, items[1].ItemName)
	assert.Empty(t, items[1].Sides)
	assert.NoError(t, mock.ExpectationsWereMet())
}
