package httpapi

import (
	"net/http"
	"strconv"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/gorilla/mux"
)

const idempotencyHeader = "Idempotency-Key"

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderCreate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	order, err := h.Orders.Create(r.Context(), &req, r.Header.Get(idempotencyHeader))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrderByCode(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order.Tracking())
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Orders.TrackingQRCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) listRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	orders, err := h.Orders.ListForRestaurant(r.Context(), caller(r), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req domain.StatusUpdate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), caller(r), orderID, req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
