package httpapi_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memStore keeps the catalog and orders in maps for end-to-end handler tests.
type memStore struct {
	mu          sync.Mutex
	restaurants map[uuid.UUID]domain.Restaurant
	categories  map[uuid.UUID]domain.MenuCategory
	items       map[uuid.UUID]domain.MenuItem
	sides       map[uuid.UUID]domain.MenuItemSide
	orders      map[uuid.UUID]domain.Order
	onboarded   map[uuid.UUID]bool
}

func newMemStore() *memStore {
	return &memStore{
		restaurants: map[uuid.UUID]domain.Restaurant{},
		categories:  map[uuid.UUID]domain.MenuCategory{},
		items:       map[uuid.UUID]domain.MenuItem{},
		sides:       map[uuid.UUID]domain.MenuItemSide{},
		orders:      map[uuid.UUID]domain.Order{},
		onboarded:   map[uuid.UUID]bool{},
	}
}

func (m *memStore) ResolveOwner(_ context.Context, kind domain.EntityKind, id uuid.UUID) (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	restaurantID := id
	switch kind {
	case domain.KindCategory:
		c, ok := m.categories[id]
		if !ok {
			return uuid.Nil, domain.ErrNotFound
		}
		restaurantID = c.RestaurantID
	case domain.KindItem:
		i, ok := m.items[id]
		if !ok {
			return uuid.Nil, domain.ErrNotFound
		}
		restaurantID = i.RestaurantID
	case domain.KindSide:
		s, ok := m.sides[id]
		if !ok {
			return uuid.Nil, domain.ErrNotFound
		}
		restaurantID = m.items[s.MenuItemID].RestaurantID
	case domain.KindOrder:
		o, ok := m.orders[id]
		if !ok {
			return uuid.Nil, domain.ErrNotFound
		}
		restaurantID = o.RestaurantID
	}

	rest, ok := m.restaurants[restaurantID]
	if !ok {
		return uuid.Nil, domain.ErrNotFound
	}
	return rest.OwnerID, nil
}

func (m *memStore) CreateRestaurant(_ context.Context, ownerID uuid.UUID, req *domain.RestaurantCreate) (*domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.restaurants {
		if r.Slug == req.Slug {
			return nil, domain.ErrConflict
		}
	}
	rest := domain.Restaurant{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      req.Name,
		Slug:      req.Slug,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	m.restaurants[rest.ID] = rest
	return &rest, nil
}

func (m *memStore) ListRestaurantsByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Restaurant
	for _, r := range m.restaurants {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) GetActiveRestaurantBySlug(_ context.Context, slug string) (*domain.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.restaurants {
		if r.Slug == slug && r.IsActive {
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memStore) OwnerHasRestaurant(ctx context.Context, ownerID uuid.UUID) (bool, error) {
	restaurants, _ := m.ListRestaurantsByOwner(ctx, ownerID)
	return len(restaurants) > 0, nil
}

func (m *memStore) MarkOnboarded(_ context.Context, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onboarded[userID] = true
	return nil
}

func (m *memStore) CreateCategory(_ context.Context, c *domain.MenuCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = uuid.New()
	m.categories[c.ID] = *c
	return nil
}

func (m *memStore) ListCategories(_ context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.MenuCategory
	for _, c := range m.categories {
		if c.RestaurantID == restaurantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memStore) UpdateCategory(_ context.Context, id uuid.UUID, u *domain.CategoryUpdate) (*domain.MenuCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Position != nil {
		c.Position = *u.Position
	}
	if u.IsActive != nil {
		c.IsActive = *u.IsActive
	}
	m.categories[id] = c
	return &c, nil
}

func (m *memStore) DeleteCategory(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *memStore) GetCategory(_ context.Context, id uuid.UUID) (*domain.MenuCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *memStore) CreateItem(_ context.Context, i *domain.MenuItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i.ID = uuid.New()
	m.items[i.ID] = *i
	return nil
}

func (m *memStore) ListItems(_ context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.MenuItem
	for _, i := range m.items {
		if i.RestaurantID == restaurantID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memStore) GetItem(_ context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &i, nil
}

func (m *memStore) UpdateItem(_ context.Context, id uuid.UUID, u *domain.ItemUpdate) (*domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.Name != nil {
		i.Name = *u.Name
	}
	if u.BasePrice != nil {
		i.BasePrice = *u.BasePrice
	}
	if u.IsAvailable != nil {
		i.IsAvailable = *u.IsAvailable
	}
	if u.CategoryID != nil {
		i.CategoryID = *u.CategoryID
	}
	m.items[id] = i
	return &i, nil
}

func (m *memStore) DeleteItem(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memStore) CreateSide(_ context.Context, s *domain.MenuItemSide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.ID = uuid.New()
	m.sides[s.ID] = *s
	return nil
}

func (m *memStore) ListSides(_ context.Context, itemID uuid.UUID) ([]domain.MenuItemSide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.MenuItemSide
	for _, s := range m.sides {
		if s.MenuItemID == itemID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) GetSide(_ context.Context, id uuid.UUID) (*domain.MenuItemSide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sides[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *memStore) UpdateSide(_ context.Context, id uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sides[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.ExtraPrice != nil {
		s.ExtraPrice = *u.ExtraPrice
	}
	m.sides[id] = s
	return &s, nil
}

func (m *memStore) DeleteSide(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sides[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.sides, id)
	return nil
}

func (m *memStore) RestaurantExists(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.restaurants[id]
	return ok, nil
}

func (m *memStore) FindMenuItems(_ context.Context, ids []uuid.UUID) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.MenuItem
	for _, id := range ids {
		if i, ok := m.items[id]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

func (m *memStore) FindSides(_ context.Context, ids []uuid.UUID) ([]domain.MenuItemSide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.MenuItemSide
	for _, id := range ids {
		if s, ok := m.sides[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) CreateOrder(_ context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order.ID = uuid.New()
	order.CreatedAt = time.Now().UTC()
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
	}
	m.orders[order.ID] = *order
	return nil
}

func (m *memStore) GetOrder(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Items = nil
	return &o, nil
}

func (m *memStore) FindOrdersInRange(_ context.Context, lo, hi uuid.UUID) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Order
	for _, o := range m.orders {
		id := o.ID.String()
		if id >= lo.String() && id <= hi.String() {
			o.Items = nil
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (m *memStore) ListOrdersByRestaurant(_ context.Context, restaurantID uuid.UUID) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []domain.Order
	for _, o := range m.orders {
		if o.RestaurantID == restaurantID {
			o.Items = nil
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memStore) UpdateOrderStatus(_ context.Context, id uuid.UUID, from, to domain.OrderStatus) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.orders[id]
	if !ok || o.Status != from {
		return nil, domain.ErrStaleRead
	}
	o.Status = to
	m.orders[id] = o
	o.Items = nil
	return &o, nil
}

func (m *memStore) LoadOrderItems(_ context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.OrderItem{}, m.orders[orderID].Items...), nil
}

func (m *memStore) ListActiveCategories(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error) {
	return m.ListCategories(ctx, restaurantID)
}

func (m *memStore) ListAvailableItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error) {
	return m.ListItems(ctx, restaurantID)
}

func (m *memStore) ListSidesForItems(_ context.Context, itemIDs []uuid.UUID) ([]domain.MenuItemSide, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wanted := map[uuid.UUID]bool{}
	for _, id := range itemIDs {
		wanted[id] = true
	}
	var out []domain.MenuItemSide
	for _, s := range m.sides {
		if wanted[s.MenuItemID] {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memStore) orderTotal(id uuid.UUID) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[id].TotalAmount
}
