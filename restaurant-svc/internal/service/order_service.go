package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant-saas/events"
	"restaurant-saas/logger"
	"restaurant-saas/restaurant-svc/internal/apperr"
	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const orderCodeLength = 8

type OrderService struct {
	repo      OrderRepository
	ownership *Ownership
	qrEncoder QRGenerator
	markers   OrderMarkers
	publisher OrderPublisher
}

func NewOrderService(repo OrderRepository, ownership *Ownership, qr QRGenerator) *OrderService {
	return &OrderService{repo: repo, ownership: ownership, qrEncoder: qr}
}

// WithMarkers enables Idempotency-Key replays.
func (s *OrderService) WithMarkers(markers OrderMarkers) *OrderService {
	s.markers = markers
	return s
}

func (s *OrderService) WithPublisher(publisher OrderPublisher) *OrderService {
	s.publisher = publisher
	return s
}

// Create prices the submission from the catalog and stores it as a pending order.
// Prices sent by the client are not trusted.
func (s *OrderService) Create(ctx context.Context, req *domain.OrderCreate, idempotencyKey string) (*domain.Order, error) {
	markerKey := ""
	if s.markers != nil && idempotencyKey != "" {
		markerKey = s.markers.OrderMarkerKey(req.RestaurantID, idempotencyKey)
		if existing, ok := s.replay(ctx, markerKey); ok {
			return existing, nil
		}
	}

	exists, err := s.repo.RestaurantExists(ctx, req.RestaurantID)
	if err != nil {
		return nil, storeError(err)
	}
	if !exists {
		return nil, apperr.NotFound("Restaurant not found")
	}

	items, err := s.resolveItems(ctx, req)
	if err != nil {
		return nil, err
	}
	sides, err := s.resolveSides(ctx, req)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		RestaurantID:    req.RestaurantID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryNote:    req.DeliveryNote,
		Status:          domain.StatusPending,
		TotalAmount:     decimal.Zero,
		Items:           make([]domain.OrderItem, 0, len(req.Items)),
	}

	for _, line := range req.Items {
		item := items[line.MenuItemID]
		if !line.Price.Equal(item.BasePrice) {
			logger.Debug(ctx, "Client price differs from catalog",
				zap.String("menu_item_id", item.ID.String()),
				zap.String("client_price", line.Price.String()),
				zap.String("catalog_price", item.BasePrice.String()))
		}

		orderItem := domain.OrderItem{
			MenuItemID: item.ID,
			Quantity:   line.Quantity,
			Price:      item.BasePrice,
			ItemName:   stringPtr(item.Name),
			Sides:      make([]domain.OrderItemSide, 0, len(line.Sides)),
		}

		unit := item.BasePrice
		for _, choice := range line.Sides {
			side := sides[choice.MenuItemSideID]
			unit = unit.Add(side.ExtraPrice)
			orderItem.Sides = append(orderItem.Sides, domain.OrderItemSide{
				MenuItemSideID: side.ID,
				ExtraPrice:     side.ExtraPrice,
				SideName:       stringPtr(side.Name),
			})
		}

		orderItem.TotalPrice = unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
		order.TotalAmount = order.TotalAmount.Add(orderItem.TotalPrice)
		order.Items = append(order.Items, orderItem)
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return nil, storeError(err)
	}

	if markerKey != "" {
		if err := s.markers.RememberOrder(ctx, markerKey, order.ID); err != nil {
			logger.Warn(ctx, "Failed to store idempotency marker", zap.Error(err))
		}
	}

	logger.Info(ctx, "Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("restaurant_id", order.RestaurantID.String()),
		zap.String("total_amount", order.TotalAmount.String()))

	s.publish(ctx, order, events.TypeOrderCreated, "")
	return order, nil
}

func (s *OrderService) replay(ctx context.Context, markerKey string) (*domain.Order, bool) {
	orderID, found, err := s.markers.LookupOrder(ctx, markerKey)
	if err != nil {
		logger.Warn(ctx, "Idempotency lookup failed", zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}

	order, err := s.hydrate(ctx, orderID)
	if err != nil {
		logger.Warn(ctx, "Failed to load replayed order", zap.String("order_id", orderID.String()), zap.Error(err))
		return nil, false
	}
	logger.Info(ctx, "Replaying order for idempotency key", zap.String("order_id", orderID.String()))
	return order, true
}

func (s *OrderService) resolveItems(ctx context.Context, req *domain.OrderCreate) (map[uuid.UUID]domain.MenuItem, error) {
	var ids []uuid.UUID
	seen := map[uuid.UUID]bool{}
	for _, line := range req.Items {
		if !seen[line.MenuItemID] {
			seen[line.MenuItemID] = true
			ids = append(ids, line.MenuItemID)
		}
	}

	found, err := s.repo.FindMenuItems(ctx, ids)
	if err != nil {
		return nil, storeError(err)
	}
	if len(found) != len(ids) {
		return nil, apperr.BadRequest("One or more menu items not found")
	}

	items := make(map[uuid.UUID]domain.MenuItem, len(found))
	for _, item := range found {
		items[item.ID] = item
	}
	for _, id := range ids {
		item, ok := items[id]
		if !ok {
			return nil, apperr.BadRequest("One or more menu items not found")
		}
		if item.RestaurantID != req.RestaurantID {
			return nil, apperr.BadRequest(fmt.Sprintf("Menu item %s does not belong to this restaurant", id))
		}
	}
	return items, nil
}

func (s *OrderService) resolveSides(ctx context.Context, req *domain.OrderCreate) (map[uuid.UUID]domain.MenuItemSide, error) {
	var ids []uuid.UUID
	seen := map[uuid.UUID]bool{}
	for _, line := range req.Items {
		for _, side := range line.Sides {
			if !seen[side.MenuItemSideID] {
				seen[side.MenuItemSideID] = true
				ids = append(ids, side.MenuItemSideID)
			}
		}
	}
	if len(ids) == 0 {
		return map[uuid.UUID]domain.MenuItemSide{}, nil
	}

	found, err := s.repo.FindSides(ctx, ids)
	if err != nil {
		return nil, storeError(err)
	}
	if len(found) != len(ids) {
		return nil, apperr.BadRequest("One or more sides not found")
	}

	sides := make(map[uuid.UUID]domain.MenuItemSide, len(found))
	for _, side := range found {
		sides[side.ID] = side
	}
	for _, line := range req.Items {
		for _, choice := range line.Sides {
			side, ok := sides[choice.MenuItemSideID]
			if !ok {
				return nil, apperr.BadRequest("One or more sides not found")
			}
			if side.MenuItemID != line.MenuItemID {
				return nil, apperr.BadRequest(fmt.Sprintf("Side %s does not belong to menu item %s",
					choice.MenuItemSideID, line.MenuItemID))
			}
		}
	}
	return sides, nil
}

// GetByCode finds the order whose id starts with the 8-character code.
func (s *OrderService) GetByCode(ctx context.Context, code string) (*domain.Order, error) {
	if len(code) != orderCodeLength {
		return nil, apperr.BadRequest("Invalid order code format")
	}

	lo, errLo := uuid.Parse(code + "-0000-0000-0000-000000000000")
	hi, errHi := uuid.Parse(code + "-ffff-ffff-ffff-ffffffffffff")
	if errLo != nil || errHi != nil {
		return nil, apperr.NotFound("Order not found")
	}

	candidates, err := s.repo.FindOrdersInRange(ctx, lo, hi)
	if err != nil {
		return nil, storeError(err)
	}

	for i := range candidates {
		order := &candidates[i]
		if !strings.HasPrefix(order.ID.String(), code) {
			continue
		}
		items, err := s.repo.LoadOrderItems(ctx, order.ID)
		if err != nil {
			return nil, storeError(err)
		}
		order.Items = items
		return order, nil
	}
	return nil, apperr.NotFound("Order not found")
}

func (s *OrderService) TrackingQRCode(ctx context.Context, code string) ([]byte, error) {
	order, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	png, err := s.qrEncoder.Generate(order.Code())
	if err != nil {
		return nil, apperr.Internal("Failed to generate QR code", err)
	}
	return png, nil
}

func (s *OrderService) ListForRestaurant(ctx context.Context, caller, restaurantID uuid.UUID) ([]domain.Order, error) {
	if err := s.ownership.Authorize(ctx, caller, domain.KindRestaurant, restaurantID); err != nil {
		return nil, err
	}

	orders, err := s.repo.ListOrdersByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, storeError(err)
	}
	for i := range orders {
		items, err := s.repo.LoadOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, storeError(err)
		}
		orders[i].Items = items
	}
	return orders, nil
}

// UpdateStatus checks the status value, then ownership, then the transition itself.
func (s *OrderService) UpdateStatus(ctx context.Context, caller, orderID uuid.UUID, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, apperr.BadRequest("Invalid status. Must be one of: pending, confirmed, preparing, ready, delivering, completed, canceled")
	}
	if err := s.ownership.Authorize(ctx, caller, domain.KindOrder, orderID); err != nil {
		return nil, err
	}

	current, err := s.repo.GetOrder(ctx, orderID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, storeError(err)
	}
	if !domain.CanTransition(current.Status, status) {
		return nil, apperr.BadRequest(fmt.Sprintf("Invalid status transition from %s to %s", current.Status, status))
	}

	updated, err := s.repo.UpdateOrderStatus(ctx, orderID, current.Status, status)
	if errors.Is(err, domain.ErrStaleRead) {
		return nil, apperr.Conflict("Order status was changed by another request, reload and retry")
	}
	if err != nil {
		return nil, storeError(err)
	}

	items, err := s.repo.LoadOrderItems(ctx, orderID)
	if err != nil {
		return nil, storeError(err)
	}
	updated.Items = items

	logger.Info(ctx, "Order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)))

	s.publish(ctx, updated, events.TypeOrderStatusChanged, current.Status)
	return updated, nil
}

func (s *OrderService) hydrate(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.LoadOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// publish is best effort: a broker outage never fails the request.
func (s *OrderService) publish(ctx context.Context, order *domain.Order, eventType string, previous domain.OrderStatus) {
	if s.publisher == nil {
		return
	}

	event := events.OrderEvent{
		EventID:        uuid.New(),
		Type:           eventType,
		OrderID:        order.ID,
		RestaurantID:   order.RestaurantID,
		Status:         string(order.Status),
		PreviousStatus: string(previous),
		TotalAmount:    order.TotalAmount,
		OrderCreatedAt: order.CreatedAt,
		Timestamp:      time.Now().UTC(),
	}
	if eventType == events.TypeOrderCreated {
		for _, item := range order.Items {
			event.Items = append(event.Items, events.OrderEventItem{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
		}
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn(ctx, "Failed to publish order event",
			zap.String("type", eventType), zap.String("order_id", order.ID.String()), zap.Error(err))
	}
}

func stringPtr(s string) *string {
	return &s
}

var _ OrderServiceInterface = (*OrderService)(nil)
