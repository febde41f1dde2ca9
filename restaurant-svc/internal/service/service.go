package service

import (
	"context"
	"time"

	"restaurant-saas/events"
	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
)

type OwnershipRepository interface {
	ResolveOwner(ctx context.Context, kind domain.EntityKind, id uuid.UUID) (uuid.UUID, error)
}

type RestaurantRepository interface {
	CreateRestaurant(ctx context.Context, ownerID uuid.UUID, req *domain.RestaurantCreate) (*domain.Restaurant, error)
	ListRestaurantsByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Restaurant, error)
	GetActiveRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	OwnerHasRestaurant(ctx context.Context, ownerID uuid.UUID) (bool, error)
	MarkOnboarded(ctx context.Context, userID uuid.UUID) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, u *domain.ProfileUpdate) (*domain.Profile, error)
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, c *domain.MenuCategory) error
	ListCategories(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, u *domain.CategoryUpdate) (*domain.MenuCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type ItemRepository interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*domain.MenuCategory, error)
	CreateItem(ctx context.Context, i *domain.MenuItem) error
	ListItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, u *domain.ItemUpdate) (*domain.MenuItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type SideRepository interface {
	CreateSide(ctx context.Context, s *domain.MenuItemSide) error
	ListSides(ctx context.Context, itemID uuid.UUID) ([]domain.MenuItemSide, error)
	GetSide(ctx context.Context, id uuid.UUID) (*domain.MenuItemSide, error)
	UpdateSide(ctx context.Context, id uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error)
	DeleteSide(ctx context.Context, id uuid.UUID) error
}

type PublicRepository interface {
	GetActiveRestaurantBySlug(ctx context.Context, slug string) (*domain.Restaurant, error)
	ListActiveCategories(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuCategory, error)
	ListAvailableItems(ctx context.Context, restaurantID uuid.UUID) ([]domain.MenuItem, error)
	ListSidesForItems(ctx context.Context, itemIDs []uuid.UUID) ([]domain.MenuItemSide, error)
}

type OrderRepository interface {
	RestaurantExists(ctx context.Context, id uuid.UUID) (bool, error)
	FindMenuItems(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItem, error)
	FindSides(ctx context.Context, ids []uuid.UUID) ([]domain.MenuItemSide, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	FindOrdersInRange(ctx context.Context, lo, hi uuid.UUID) ([]domain.Order, error)
	ListOrdersByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to domain.OrderStatus) (*domain.Order, error)
	LoadOrderItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
}

// OrderMarkers remembers which order an idempotency key produced.
type OrderMarkers interface {
	OrderMarkerKey(restaurantID uuid.UUID, idempotencyKey string) string
	LookupOrder(ctx context.Context, key string) (uuid.UUID, bool, error)
	RememberOrder(ctx context.Context, key string, orderID uuid.UUID) error
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event events.OrderEvent) error
}

type ObjectStorage interface {
	Put(ctx context.Context, path string, body []byte, contentType string) error
	PublicURL(path string) string
	SignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type StatsReader interface {
	RestaurantStats(ctx context.Context, restaurantID uuid.UUID, now time.Time) (*domain.RestaurantStats, error)
}

type RestaurantServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *domain.RestaurantCreate) (*domain.Restaurant, error)
	ListMine(ctx context.Context, ownerID uuid.UUID) ([]domain.Restaurant, error)
	GetPublic(ctx context.Context, slug string) (*domain.RestaurantPublic, error)
	HasRestaurant(ctx context.Context, ownerID uuid.UUID) (bool, error)
}

type ProfileServiceInterface interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, u *domain.ProfileUpdate) (*domain.Profile, error)
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, caller uuid.UUID, req *domain.CategoryCreate) (*domain.MenuCategory, error)
	List(ctx context.Context, caller, restaurantID uuid.UUID) ([]domain.MenuCategory, error)
	Update(ctx context.Context, caller, id uuid.UUID, u *domain.CategoryUpdate) (*domain.MenuCategory, error)
	Delete(ctx context.Context, caller, id uuid.UUID) error
}

type ItemServiceInterface interface {
	Create(ctx context.Context, caller uuid.UUID, req *domain.ItemCreate) (*domain.MenuItem, error)
	List(ctx context.Context, caller, restaurantID uuid.UUID) ([]domain.MenuItem, error)
	Update(ctx context.Context, caller, id uuid.UUID, u *domain.ItemUpdate) (*domain.MenuItem, error)
	Delete(ctx context.Context, caller, id uuid.UUID) error
}

type SideServiceInterface interface {
	Create(ctx context.Context, caller, itemID uuid.UUID, req *domain.SideCreate) (*domain.MenuItemSide, error)
	List(ctx context.Context, caller, itemID uuid.UUID) ([]domain.MenuItemSide, error)
	Update(ctx context.Context, caller, id uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error)
	Delete(ctx context.Context, caller, id uuid.UUID) error
	UpdateForItem(ctx context.Context, caller, itemID, sideID uuid.UUID, u *domain.SideUpdate) (*domain.MenuItemSide, error)
	DeleteForItem(ctx context.Context, caller, itemID, sideID uuid.UUID) error
}

type PublicServiceInterface interface {
	Restaurant(ctx context.Context, slug string) (*domain.PublicRestaurantInfo, error)
	Menu(ctx context.Context, slug string) (*domain.PublicMenu, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req *domain.OrderCreate, idempotencyKey string) (*domain.Order, error)
	GetByCode(ctx context.Context, code string) (*domain.Order, error)
	TrackingQRCode(ctx context.Context, code string) ([]byte, error)
	ListForRestaurant(ctx context.Context, caller, restaurantID uuid.UUID) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, caller, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error)
}

type UploadServiceInterface interface {
	Upload(ctx context.Context, file UploadFile, folder Folder, ownerID uuid.UUID) (string, error)
	ImageURL(ctx context.Context, path string) (string, error)
}

type StatsServiceInterface interface {
	Get(ctx context.Context, caller, restaurantID uuid.UUID) (*domain.RestaurantStats, error)
}
