package httpapi

import (
	"encoding/json"
	"net/http"

	"restaurant-saas/logger"
	"restaurant-saas/restaurant-svc/internal/apperr"
	"restaurant-saas/restaurant-svc/internal/auth"
	"restaurant-saas/restaurant-svc/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type Services struct {
	Restaurants service.RestaurantServiceInterface
	Profiles    service.ProfileServiceInterface
	Categories  service.CategoryServiceInterface
	Items       service.ItemServiceInterface
	Sides       service.SideServiceInterface
	Public      service.PublicServiceInterface
	Orders      service.OrderServiceInterface
	Uploads     service.UploadServiceInterface
	Stats       service.StatsServiceInterface
}

type Handler struct {
	Services
	Verifier  *auth.Verifier
	Limiter   Limiter
	Validator *RequestValidator
}

// NewHandler accepts a nil limiter; order submissions are then not throttled.
func NewHandler(services Services, verifier *auth.Verifier, limiter Limiter) *Handler {
	return &Handler{
		Services:  services,
		Verifier:  verifier,
		Limiter:   limiter,
		Validator: NewRequestValidator(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.root).Methods("GET")
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/restaurants", h.auth(h.createRestaurant)).Methods("POST")
	r.HandleFunc("/restaurants/me", h.auth(h.listMyRestaurants)).Methods("GET")
	r.HandleFunc("/restaurants/{slug}", h.getRestaurantBySlug).Methods("GET")
	r.HandleFunc("/restaurants/{id}/orders", h.auth(h.listRestaurantOrders)).Methods("GET")
	r.HandleFunc("/restaurants/{id}/stats", h.auth(h.getRestaurantStats)).Methods("GET")
	r.HandleFunc("/onboarding/status", h.auth(h.onboardingStatus)).Methods("GET")

	r.HandleFunc("/profiles/me", h.auth(h.getProfile)).Methods("GET")
	r.HandleFunc("/profiles/me", h.auth(h.updateProfile)).Methods("PATCH")

	r.HandleFunc("/menu/categories", h.auth(h.createCategory)).Methods("POST")
	r.HandleFunc("/menu/categories", h.auth(h.listCategories)).Methods("GET")
	r.HandleFunc("/menu/categories/{id}", h.auth(h.updateCategory)).Methods("PATCH")
	r.HandleFunc("/menu/categories/{id}", h.auth(h.deleteCategory)).Methods("DELETE")

	r.HandleFunc("/menu/items", h.auth(h.createItem)).Methods("POST")
	r.HandleFunc("/menu/items", h.auth(h.listItems)).Methods("GET")
	r.HandleFunc("/menu/items/{id}", h.auth(h.updateItem)).Methods("PATCH")
	r.HandleFunc("/menu/items/{id}", h.auth(h.deleteItem)).Methods("DELETE")

	r.HandleFunc("/menu/items/{item_id}/sides", h.auth(h.createSide)).Methods("POST")
	r.HandleFunc("/menu/items/{item_id}/sides", h.auth(h.listSides)).Methods("GET")
	r.HandleFunc("/menu/items/{item_id}/sides/{side_id}", h.auth(h.updateItemSide)).Methods("PATCH")
	r.HandleFunc("/menu/items/{item_id}/sides/{side_id}", h.auth(h.deleteItemSide)).Methods("DELETE")
	r.HandleFunc("/menu/sides/{side_id}", h.auth(h.updateSide)).Methods("PATCH")
	r.HandleFunc("/menu/sides/{side_id}", h.auth(h.deleteSide)).Methods("DELETE")

	r.HandleFunc("/orders", h.throttle(h.createOrder)).Methods("POST")
	r.HandleFunc("/orders/{id}/status", h.auth(h.updateOrderStatus)).Methods("PATCH")
	r.HandleFunc("/public/orders/{code}", h.getOrderByCode).Methods("GET")
	r.HandleFunc("/public/orders/{code}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/public/restaurants/{slug}", h.getPublicRestaurant).Methods("GET")
	r.HandleFunc("/public/restaurants/{slug}/menu", h.getPublicMenu).Methods("GET")
	r.HandleFunc("/public/images/{path:.+}", h.redirectImage).Methods("GET")

	r.HandleFunc("/uploads/avatar", h.auth(h.uploadTo(service.FolderAvatars, "Avatar uploaded successfully"))).Methods("POST")
	r.HandleFunc("/uploads/logo", h.auth(h.uploadTo(service.FolderLogos, "Logo uploaded successfully"))).Methods("POST")
	r.HandleFunc("/uploads/menu_item_image", h.auth(h.uploadTo(service.FolderMenuImages, "Menu image uploaded successfully"))).Methods("POST")
}

func (h *Handler) auth(next http.HandlerFunc) http.HandlerFunc {
	return h.Verifier.Middleware(next).ServeHTTP
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Welcome to the Restaurant SaaS Backend",
		"docs_url":  "/docs",
		"redoc_url": "/redoc",
	})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "restaurant-saas-backend",
	})
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError renders err and logs server-side failures with the request id.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apperr.StatusOf(err) >= http.StatusInternalServerError {
		logger.Error(r.Context(), "Request failed", err)
	}
	apperr.Write(w, err)
}

// decode reads a JSON body into dst and validates it.
func (h *Handler) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	return h.Validator.Struct(dst)
}

func caller(r *http.Request) uuid.UUID {
	userID, _ := auth.UserIDFromContext(r.Context())
	return userID
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid " + name)
	}
	return id, nil
}

func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, apperr.BadRequest("Query parameter '" + name + "' is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.BadRequest("Invalid " + name)
	}
	return id, nil
}
