package httpapi

import (
	"net/http"

	"restaurant-saas/restaurant-svc/internal/domain"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req domain.CategoryCreate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.Categories.Create(r.Context(), caller(r), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := queryUUID(r, "restaurant_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	categories, err := h.Categories.List(r.Context(), caller(r), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []domain.MenuCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req domain.CategoryUpdate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	category, err := h.Categories.Update(r.Context(), caller(r), id, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Categories.Delete(r.Context(), caller(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req domain.ItemCreate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.Items.Create(r.Context(), caller(r), &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := queryUUID(r, "restaurant_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.Items.List(r.Context(), caller(r), restaurantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req domain.ItemUpdate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.Items.Update(r.Context(), caller(r), id, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Items.Delete(r.Context(), caller(r), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createSide(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req domain.SideCreate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	side, err := h.Sides.Create(r.Context(), caller(r), itemID, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, side)
}

func (h *Handler) listSides(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	sides, err := h.Sides.List(r.Context(), caller(r), itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if sides == nil {
		sides = []domain.MenuItemSide{}
	}
	writeJSON(w, http.StatusOK, map[string][]domain.MenuItemSide{"sides": sides})
}

func (h *Handler) updateItemSide(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	sideID, err := pathUUID(r, "side_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req domain.SideUpdate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	side, err := h.Sides.UpdateForItem(r.Context(), caller(r), itemID, sideID, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]*domain.MenuItemSide{"side": side})
}

func (h *Handler) deleteItemSide(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "item_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	sideID, err := pathUUID(r, "side_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.Sides.DeleteForItem(r.Context(), caller(r), itemID, sideID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Side deleted"})
}

func (h *Handler) updateSide(w http.ResponseWriter, r *http.Request) {
	sideID, err := pathUUID(r, "side_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req domain.SideUpdate
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	side, err := h.Sides.Update(r.Context(), caller(r), sideID, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, side)
}

func (h *Handler) deleteSide(w http.ResponseWriter, r *http.Request) {
	sideID, err := pathUUID(r, "side_id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.Sides.Delete(r.Context(), caller(r), sideID); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
