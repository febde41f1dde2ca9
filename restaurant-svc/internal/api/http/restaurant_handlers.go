package httpapi

import (
	"net/http"

	"restaurant-saas/restaurant-svc/internal/domain"

	"github.com/gorilla/mux"
)

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req domain.RestaurantCreate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	rest, err := h.Restaurants.Create(r.Context(), caller(r), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) listMyRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.ListMine(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurantBySlug(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.GetPublic(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) onboardingStatus(w http.ResponseWriter, r *http.Request) {
	has, err := h.Restaurants.HasRestaurant(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"has_restaurant": has})
}

func (h *Handler) getRestaurantStats(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	stats, err := h.Stats.Get(r.Context(), caller(r), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Profiles.Get(r.Context(), caller(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.ProfileUpdate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.Profiles.Update(r.Context(), caller(r), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
