package httpapi_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpapi "restaurant-saas/restaurant-svc/internal/api/http"
	"restaurant-saas/restaurant-svc/internal/auth"
	"restaurant-saas/restaurant-svc/internal/domain"
	"restaurant-saas/restaurant-svc/internal/mocks"
	"restaurant-saas/restaurant-svc/internal/service"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testServer struct {
	store   *memStore
	objects *mocks.ObjectStorage
	router  http.Handler
}

func newTestServer(t *testing.T, limiter httpapi.Limiter) *testServer {
	t.Helper()

	store := newMemStore()
	objects := mocks.NewObjectStorage(t)
	ownership := service.NewOwnership(store)

	services := httpapi.Services{
		Restaurants: service.NewRestaurantService(store),
		Categories:  service.NewCategoryService(store, ownership),
		Items:       service.NewItemService(store, ownership),
		Sides:       service.NewSideService(store, ownership),
		Public:      service.NewPublicService(store),
		Orders:      service.NewOrderService(store, ownership, service.DefaultQRGenerator{BaseURL: "https://menu.example.com"}),
		Uploads:     service.NewUploadService(objects),
		Stats:       service.NewStatsService(nil, ownership),
	}
	handler := httpapi.NewHandler(services, auth.NewVerifier(testSecret, "authenticated"), limiter)

	return &testServer{store: store, objects: objects, router: httpapi.NewRouter(handler)}
}

func token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Audience:  jwt.ClaimStrings{"authenticated"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (s *testServer) do(t *testing.T, method, path string, user uuid.UUID, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != uuid.Nil {
		req.Header.Set("Authorization", "Bearer "+token(t, user))
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst), w.Body.String())
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	decodeBody(t, w, &body)
	return body.Detail
}

// seedMenu creates a restaurant with one 3500 item carrying a 500 side.
func seedMenu(t *testing.T, s *testServer, owner uuid.UUID) (domain.Restaurant, domain.MenuItem, domain.MenuItemSide) {
	t.Helper()

	w := s.do(t, "POST", "/restaurants", owner, map[string]string{"name": "Le Bistro", "slug": "le-bistro"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rest domain.Restaurant
	decodeBody(t, w, &rest)

	w = s.do(t, "POST", "/menu/categories", owner, map[string]interface{}{"restaurant_id": rest.ID, "name": "Mains"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var category domain.MenuCategory
	decodeBody(t, w, &category)

	w = s.do(t, "POST", "/menu/items", owner, map[string]interface{}{
		"restaurant_id": rest.ID,
		"category_id":   category.ID,
		"name":          "Steak frites",
		"base_price":    3500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var item domain.MenuItem
	decodeBody(t, w, &item)

	w = s.do(t, "POST", "/menu/items/"+item.ID.String()+"/sides", owner, map[string]interface{}{
		"name":        "Pepper sauce",
		"extra_price": 500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var side domain.MenuItemSide
	decodeBody(t, w, &side)

	return rest, item, side
}

func orderBody(restaurantID, itemID, sideID uuid.UUID, quantity int) map[string]interface{} {
	return map[string]interface{}{
		"restaurant_id":    restaurantID,
		"customer_name":    "Ada",
		"customer_phone":   "0612345678",
		"delivery_address": "12 rue de la Paix",
		"items": []map[string]interface{}{{
			"menu_item_id": itemID,
			"quantity":     quantity,
			"price":        1,
			"sides":        []map[string]interface{}{{"id": sideID, "extra_price": 0}},
		}},
	}
}

func TestOrderLifecycle(t *testing.T) {
	s := newTestServer(t, nil)
	owner := uuid.New()
	stranger := uuid.New()
	rest, item, side := seedMenu(t, s, owner)

	w := s.do(t, "POST", "/orders", uuid.Nil, orderBody(rest.ID, item.ID, side.ID, 2))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order domain.Order
	decodeBody(t, w, &order)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.True(t, decimal.NewFromInt(8000).Equal(order.TotalAmount), order.TotalAmount.String())
	assert.True(t, decimal.NewFromInt(8000).Equal(s.store.orderTotal(order.ID)))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Steak frites", *order.Items[0].ItemName)
	require.Len(t, order.Items[0].Sides, 1)

	w = s.do(t, "GET", "/public/orders/"+order.Code(), uuid.Nil, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var tracking domain.OrderTracking
	decodeBody(t, w, &tracking)
	assert.Equal(t, order.Code(), tracking.OrderCode)
	assert.True(t, decimal.NewFromInt(8000).Equal(tracking.TotalPrice))

	statusPath := "/orders/" + order.ID.String() + "/status"

	w = s.do(t, "PATCH", statusPath, stranger, map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You don't have access to this order", detail(t, w))

	w = s.do(t, "PATCH", statusPath, owner, map[string]string{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, "PATCH", statusPath, owner, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var confirmed domain.Order
	decodeBody(t, w, &confirmed)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.Len(t, confirmed.Items, 1)

	w = s.do(t, "GET", "/restaurants/"+rest.ID.String()+"/orders", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []domain.Order
	decodeBody(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusConfirmed, orders[0].Status)

	w = s.do(t, "GET", "/restaurants/"+rest.ID.String()+"/orders", stranger, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateOrderHandler(t *testing.T) {
	s := newTestServer(t, nil)
	owner := uuid.New()
	rest, item, side := seedMenu(t, s, owner)

	otherSide := uuid.New()
	shortPhone := orderBody(rest.ID, item.ID, side.ID, 1)
	shortPhone["customer_phone"] = "123"
	noItems := orderBody(rest.ID, item.ID, side.ID, 1)
	noItems["items"] = []interface{}{}

	tests := []struct {
		name       string
		body       interface{}
		wantCode   int
		wantDetail string
	}{
		{name: "valid order", body: orderBody(rest.ID, item.ID, side.ID, 1), wantCode: http.StatusCreated},
		{name: "malformed json", body: "{not json", wantCode: http.StatusBadRequest, wantDetail: "Invalid request body"},
		{
			name: "zero quantity", body: orderBody(rest.ID, item.ID, side.ID, 0),
			wantCode: http.StatusBadRequest, wantDetail: "Field 'items[0].quantity' failed on the 'gt' rule",
		},
		{
			name: "short phone", body: shortPhone,
			wantCode: http.StatusBadRequest, wantDetail: "Field 'customer_phone' failed on the 'min' rule",
		},
		{name: "empty cart", body: noItems, wantCode: http.StatusBadRequest},
		{
			name: "unknown restaurant", body: orderBody(uuid.New(), item.ID, side.ID, 1),
			wantCode: http.StatusNotFound, wantDetail: "Restaurant not found",
		},
		{
			name: "unknown side", body: orderBody(rest.ID, item.ID, otherSide, 1),
			wantCode: http.StatusBadRequest, wantDetail: "One or more sides not found",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := s.do(t, "POST", "/orders", uuid.Nil, testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code, w.Body.String())
			if testCase.wantDetail != "" {
				assert.Equal(t, testCase.wantDetail, detail(t, w))
			}
		})
	}
}

type stubLimiter struct {
	allowed bool
	err     error
}

func (l stubLimiter) Allow(_ context.Context, _ string) (bool, error) {
	return l.allowed, l.err
}

func TestOrderThrottle(t *testing.T) {
	tests := []struct {
		name     string
		limiter  stubLimiter
		wantCode int
	}{
		{name: "under the limit", limiter: stubLimiter{allowed: true}, wantCode: http.StatusCreated},
		{name: "over the limit", limiter: stubLimiter{allowed: false}, wantCode: http.StatusTooManyRequests},
		{name: "limiter down", limiter: stubLimiter{err: assert.AnError}, wantCode: http.StatusCreated},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := newTestServer(t, testCase.limiter)
			rest, item, side := seedMenu(t, s, uuid.New())

			w := s.do(t, "POST", "/orders", uuid.Nil, orderBody(rest.ID, item.ID, side.ID, 1))
			assert.Equal(t, testCase.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name       string
		header     string
		wantDetail string
	}{
		{name: "no header", wantDetail: "Invalid authentication credentials"},
		{name: "wrong scheme", header: "Basic abc", wantDetail: "Invalid authentication credentials"},
		{name: "garbage token", header: "Bearer not-a-jwt"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/restaurants/me", nil)
			if testCase.header != "" {
				req.Header.Set("Authorization", testCase.header)
			}
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			if testCase.wantDetail != "" {
				assert.Equal(t, testCase.wantDetail, detail(t, w))
			} else {
				assert.True(t, strings.HasPrefix(detail(t, w), "Authentication failed: "))
			}
		})
	}
}

func TestCreateRestaurantHandler(t *testing.T) {
	s := newTestServer(t, nil)
	owner := uuid.New()

	tests := []struct {
		name     string
		body     map[string]string
		wantCode int
	}{
		{name: "valid restaurant", body: map[string]string{"name": "Le Bistro", "slug": "le-bistro"}, wantCode: http.StatusOK},
		{name: "duplicate slug", body: map[string]string{"name": "Other", "slug": "le-bistro"}, wantCode: http.StatusConflict},
		{name: "uppercase slug", body: map[string]string{"name": "Other", "slug": "Le Bistro"}, wantCode: http.StatusBadRequest},
		{name: "missing name", body: map[string]string{"slug": "other"}, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := s.do(t, "POST", "/restaurants", owner, testCase.body)
			assert.Equal(t, testCase.wantCode, w.Code, w.Body.String())
		})
	}

	w := s.do(t, "GET", "/onboarding/status", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status map[string]bool
	decodeBody(t, w, &status)
	assert.True(t, status["has_restaurant"])
	assert.True(t, s.store.onboarded[owner])

	w = s.do(t, "GET", "/restaurants/le-bistro", uuid.Nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var public domain.RestaurantPublic
	decodeBody(t, w, &public)
	assert.Equal(t, "Le Bistro", public.Name)

	w = s.do(t, "GET", "/restaurants/me", owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []domain.Restaurant
	decodeBody(t, w, &mine)
	assert.Len(t, mine, 1)
}

func TestSidesHandlers(t *testing.T) {
	s := newTestServer(t, nil)
	owner := uuid.New()
	_, item, side := seedMenu(t, s, owner)
	itemPath := "/menu/items/" + item.ID.String() + "/sides"

	w := s.do(t, "GET", itemPath, owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list map[string][]domain.MenuItemSide
	decodeBody(t, w, &list)
	assert.Len(t, list["sides"], 1)

	w = s.do(t, "PATCH", itemPath+"/"+side.ID.String(), owner, map[string]string{"name": "Aioli"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var wrapped map[string]domain.MenuItemSide
	decodeBody(t, w, &wrapped)
	assert.Equal(t, "Aioli", wrapped["side"].Name)

	w = s.do(t, "PATCH", itemPath+"/"+side.ID.String(), owner, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No fields to update", detail(t, w))

	w = s.do(t, "PATCH", "/menu/sides/"+side.ID.String(), uuid.New(), map[string]string{"name": "Mayo"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, "DELETE", itemPath+"/"+uuid.NewString(), owner, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, "DELETE", itemPath+"/"+side.ID.String(), owner, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var msg map[string]string
	decodeBody(t, w, &msg)
	assert.Equal(t, "Side deleted", msg["message"])
}

func TestPublicMenuHandler(t *testing.T) {
	s := newTestServer(t, nil)
	_, item, side := seedMenu(t, s, uuid.New())

	w := s.do(t, "GET", "/public/restaurants/le-bistro/menu", uuid.Nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var menu domain.PublicMenu
	decodeBody(t, w, &menu)
	require.Len(t, menu.Menu, 1)
	require.Len(t, menu.Menu[0].Items, 1)
	assert.Equal(t, item.ID, menu.Menu[0].Items[0].ID)
	assert.Equal(t, side.ID, menu.Menu[0].Items[0].Sides[0].ID)

	w = s.do(t, "GET", "/public/restaurants/unknown/menu", uuid.Nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderQRCodeHandler(t *testing.T) {
	s := newTestServer(t, nil)
	rest, item, side := seedMenu(t, s, uuid.New())

	w := s.do(t, "POST", "/orders", uuid.Nil, orderBody(rest.ID, item.ID, side.ID, 1))
	require.Equal(t, http.StatusCreated, w.Code)
	var order domain.Order
	decodeBody(t, w, &order)

	w = s.do(t, "GET", "/public/orders/"+order.Code()+"/qrcode", uuid.Nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = s.do(t, "GET", "/public/orders/abc/qrcode", uuid.Nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func multipartUpload(t *testing.T, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name     string
		filename string
		size     int
		wantCode int
	}{
		{name: "png logo", filename: "logo.png", size: 128, wantCode: http.StatusOK},
		{name: "bad extension", filename: "logo.exe", size: 128, wantCode: http.StatusBadRequest},
		{name: "six megabytes", filename: "logo.png", size: 6 * 1024 * 1024, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := newTestServer(t, nil)
			if testCase.wantCode == http.StatusOK {
				s.objects.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
				s.objects.On("PublicURL", mock.Anything).Return("https://cdn.example.com/logo.png").Once()
			}

			body, contentType := multipartUpload(t, testCase.filename, bytes.Repeat([]byte{1}, testCase.size))
			req := httptest.NewRequest("POST", "/uploads/logo", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Authorization", "Bearer "+token(t, owner))
			w := httptest.NewRecorder()
			s.router.ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code, w.Body.String())
			if testCase.wantCode == http.StatusOK {
				var resp map[string]string
				decodeBody(t, w, &resp)
				assert.Equal(t, "https://cdn.example.com/logo.png", resp["url"])
			} else {
				s.objects.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestImageRedirect(t *testing.T) {
	s := newTestServer(t, nil)
	s.objects.On("SignedURL", mock.Anything, "menu-images/owner/dish.jpg", time.Hour).Return("https://signed/dish.jpg", nil).Once()

	w := s.do(t, "GET", "/public/images/menu-images/owner/dish.jpg", uuid.Nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://signed/dish.jpg", w.Header().Get("Location"))

	w = s.do(t, "GET", "/public/images/private/secret.jpg", uuid.Nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthHandlers(t *testing.T) {
	s := newTestServer(t, nil)

	tests := []struct {
		name string
		path string
		key  string
		want string
	}{
		{name: "root", path: "/", key: "message", want: "Welcome to the Restaurant SaaS Backend"},
		{name: "health", path: "/health", key: "status", want: "ok"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			w := s.do(t, "GET", testCase.path, uuid.Nil, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			var body map[string]string
			decodeBody(t, w, &body)
			assert.Equal(t, testCase.want, body[testCase.key])
		})
	}
}

func TestStatsUnavailable(t *testing.T) {
	s := newTestServer(t, nil)
	owner := uuid.New()
	rest, _, _ := seedMenu(t, s, owner)

	w := s.do(t, "GET", "/restaurants/"+rest.ID.String()+"/stats", owner, nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRegisterRoutesWithoutMiddleware(t *testing.T) {
	handler := httpapi.NewHandler(httpapi.Services{}, auth.NewVerifier(testSecret, ""), nil)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}
