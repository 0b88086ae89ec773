package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	apihttp "github.com/shaheencodecrafters/marketplace-service/internal/api/http"
	"github.com/shaheencodecrafters/marketplace-service/internal/api/http/handlers"
	"github.com/shaheencodecrafters/marketplace-service/internal/auth"
	"github.com/shaheencodecrafters/marketplace-service/internal/config"
	"github.com/shaheencodecrafters/marketplace-service/internal/domain"
	"github.com/shaheencodecrafters/marketplace-service/internal/observability"
	"github.com/shaheencodecrafters/marketplace-service/internal/service"
	"github.com/shaheencodecrafters/marketplace-service/internal/session"
)

// In-memory doubles for the storage and session layers. They return
// pgx.ErrNoRows for misses, as the real repositories do.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: make(map[string]*domain.User)} }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) UpdateEmail(_ context.Context, id, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	u.Email = email
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.PasswordHash = passwordHash
	return nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo { return &fakeOrderRepo{orders: make(map[string]*domain.Order)} }

func (r *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	order.CreatedAt = time.Now()
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Order{}
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) MarkPaid(_ context.Context, id, paymentMethod string, paymentID *string, paidAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return pgx.ErrNoRows
	}
	o.Status = domain.OrderStatusPaid
	o.PaymentMethod = &paymentMethod
	o.PaymentID = paymentID
	o.PaidAt = &paidAt
	return nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*domain.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Product{}
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(_ context.Context, categoryID string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Product{}
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.products, id)
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]*domain.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id string) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.categories[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Category{}
	for _, c := range r.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[category.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.categories, id)
	return nil
}

type fakeSliderRepo struct {
	mu      sync.Mutex
	sliders map[string]*domain.Slider
}

func newFakeSliderRepo() *fakeSliderRepo {
	return &fakeSliderRepo{sliders: make(map[string]*domain.Slider)}
}

func (r *fakeSliderRepo) Create(_ context.Context, slider *domain.Slider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if slider.ID == "" {
		slider.ID = uuid.NewString()
	}
	r.sliders[slider.ID] = slider
	return nil
}

func (r *fakeSliderRepo) GetByID(_ context.Context, id string) (*domain.Slider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sliders[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeSliderRepo) List(_ context.Context) ([]domain.Slider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Slider{}
	for _, s := range r.sliders {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSliderRepo) Update(_ context.Context, slider *domain.Slider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sliders[slider.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.sliders[slider.ID] = slider
	return nil
}

func (r *fakeSliderRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sliders[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.sliders, id)
	return nil
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (s *fakeSessionStore) Create(_ context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.sessions[token] = userID
	return token, nil
}

func (s *fakeSessionStore) Resolve(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.sessions[token]
	if !ok {
		return "", session.ErrNoSession
	}
	return userID, nil
}

func (s *fakeSessionStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

type testEnv struct {
	app        *fiber.App
	users      *fakeUserRepo
	orders     *fakeOrderRepo
	products   *fakeProductRepo
	categories *fakeCategoryRepo
	sliders    *fakeSliderRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := config.Config{
		Auth:    config.AuthConfig{BcryptCost: 4},
		Session: config.SessionConfig{CookieName: "sid", TTLHours: 24},
		CORS: config.CORSConfig{
			TrustedPrefixes: []string{"http://localhost:", "http://127.0.0.1:", "http://192.168.", "http://10.0."},
		},
	}

	env := &testEnv{
		users:      newFakeUserRepo(),
		orders:     newFakeOrderRepo(),
		products:   newFakeProductRepo(),
		categories: newFakeCategoryRepo(),
		sliders:    newFakeSliderRepo(),
	}

	store := newFakeSessionStore()
	sessionMW := session.NewMiddleware(store, cfg.Session)

	authSvc := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:     env.users,
		SessionStore: store,
	})
	orderSvc := service.NewOrderService(cfg, service.OrderDependencies{
		OrderRepo:   env.orders,
		ProductRepo: env.products,
		UserRepo:    env.users,
	})
	catalogSvc := service.NewCatalogService(service.CatalogDependencies{
		CategoryRepo: env.categories,
		ProductRepo:  env.products,
		SliderRepo:   env.sliders,
	})

	app := fiber.New()
	policy := apihttp.NewOriginPolicy(cfg.CORS.TrustedPrefixes)
	apihttp.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), policy, 0)
	apihttp.RegisterRoutes(app, apihttp.RouteConfig{
		Health:     handlers.NewHealthHandler("marketplace-service-test", "test", nil, nil),
		Sessions:   handlers.NewSessionsHandler(authSvc, cfg.Session),
		Users:      handlers.NewUsersHandler(authSvc),
		Orders:     handlers.NewOrdersHandler(orderSvc),
		Categories: handlers.NewCategoriesHandler(catalogSvc),
		Products:   handlers.NewProductsHandler(catalogSvc),
		Sliders:    handlers.NewSlidersHandler(catalogSvc),
		Session:    sessionMW,
	})
	env.app = app
	return env
}

func (e *testEnv) seedUser(t *testing.T, email, password string) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	assert.NoError(t, err)
	user := &domain.User{Name: "Test User", Email: email, Phone: uuid.NewString(), PasswordHash: hash}
	assert.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			return c
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestLoginThenListOwnOrders(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	cookie := sessionCookie(t, resp)
	assert.True(t, cookie.HttpOnly)
	body := decodeBody(t, resp)
	assert.Equal(t, "Login successful", body["message"])

	req := httptest.NewRequest("GET", "/api/my-orders/"+user.ID, nil)
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var orders []map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	assert.Empty(t, orders)
}

func TestListOrdersOfAnotherUserForbidden(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "a@x.com", "secret")
	other := env.seedUser(t, "b@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := httptest.NewRequest("GET", "/api/my-orders/"+other.ID, nil)
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Unauthorized access", body["message"])
	assert.Equal(t, "FORBIDDEN", body["code"])
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := jsonRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Logout successful", body["message"])

	req = httptest.NewRequest("GET", "/api/my-orders/"+user.ID, nil)
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)

	// logging out again with the stale cookie still succeeds
	req = jsonRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestLoginWithWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "a@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "wrong",
	}))
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid credentials", body["message"])
	assert.Empty(t, resp.Cookies())
}

func TestGetUserNeverExposesPasswordMaterial(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com", "secret")

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/user/"+user.ID, nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	lowered := strings.ToLower(string(raw))
	assert.NotContains(t, lowered, "password")
	assert.Contains(t, string(raw), user.Email)
}

func TestGetUserMalformedID(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/user/not-a-uuid", nil))
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid user ID format", body["message"])
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
}

func TestGetUserUnknownID(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/user/"+uuid.NewString(), nil))
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCatalogWritesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(jsonRequest("POST", "/api/categories", fiber.Map{
		"name": "Plumbing", "imageUrl": "http://img", "cloudinaryId": "asset-1",
	}))
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestCategoryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "admin@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "admin@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := jsonRequest("POST", "/api/categories", fiber.Map{
		"name": "Plumbing", "imageUrl": "http://img", "cloudinaryId": "asset-1",
	})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	body := decodeBody(t, resp)
	category := body["category"].(map[string]any)
	categoryID := category["id"].(string)
	assert.NotEmpty(t, categoryID)

	resp, err = env.app.Test(httptest.NewRequest("GET", "/api/categories/"+categoryID, nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	req = jsonRequest("DELETE", "/api/categories/"+categoryID, nil)
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = env.app.Test(httptest.NewRequest("GET", "/api/categories/"+categoryID, nil))
	assert.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestOrderPlacementAndPayment(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com", "secret")

	category := &domain.Category{Name: "Plumbing", ImageURL: "http://img", AssetID: "asset-1"}
	assert.NoError(t, env.categories.Create(context.Background(), category))
	product := &domain.Product{Title: "Pipe fix", Price: 50, CategoryID: category.ID, ImageURL: "http://img", AssetID: "asset-2"}
	assert.NoError(t, env.products.Create(context.Background(), product))

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := jsonRequest("POST", "/api/orders", fiber.Map{
		"productId":    product.ID,
		"locationName": "Home",
		"locationLong": 51.4,
		"locationLat":  35.7,
	})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)
	body := decodeBody(t, resp)
	order := body["order"].(map[string]any)
	orderID := order["id"].(string)
	assert.Equal(t, user.ID, order["userId"])
	assert.Equal(t, "requested", order["status"])

	req = jsonRequest("POST", "/api/orders/payment", fiber.Map{
		"orderId":       orderID,
		"paymentMethod": "card",
		"paymentId":     "pay-1",
	})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Payment processed successfully", body["message"])

	stored, err := env.orders.GetByID(context.Background(), orderID)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, stored.Status)
	assert.NotNil(t, stored.PaymentID)
	assert.Equal(t, "pay-1", *stored.PaymentID)

	// repeated confirmation leaves the stored payment untouched
	req = jsonRequest("POST", "/api/orders/payment", fiber.Map{
		"orderId":       orderID,
		"paymentMethod": "cash",
	})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	stored, err = env.orders.GetByID(context.Background(), orderID)
	assert.NoError(t, err)
	assert.NotNil(t, stored.PaymentMethod)
	assert.Equal(t, "card", *stored.PaymentMethod)
}

func TestSocialSignupTwiceFindsExistingAccount(t *testing.T) {
	env := newTestEnv(t)

	payload := fiber.Map{
		"name": "A", "email": "a@x.com", "phone": "111", "provider": "google",
	}

	resp, err := env.app.Test(jsonRequest("POST", "/social-signup", payload))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Signup successful", body["message"])
	firstID := body["user"].(map[string]any)["id"].(string)

	resp, err = env.app.Test(jsonRequest("POST", "/social-signup", payload))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, firstID, body["user"].(map[string]any)["id"].(string))
	sessionCookie(t, resp)
}

func TestGuestOrderRejectedByDefault(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/api/orders", fiber.Map{
		"userId":       user.ID,
		"productId":    uuid.NewString(),
		"locationName": "Home",
		"locationLong": 1.0,
		"locationLat":  2.0,
	}))
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestUpdatePasswordFlow(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := jsonRequest("PUT", "/api/user/password/"+user.ID, fiber.Map{
		"oldPassword": "wrong", "newPassword": "next",
	})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Old password is incorrect", body["message"])

	req = jsonRequest("PUT", "/api/user/password/"+user.ID, fiber.Map{
		"oldPassword": "secret", "newPassword": "next",
	})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	// the new credential works for a fresh login
	resp, err = env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "next",
	}))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUpdateEmailOfAnotherUserForbidden(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "a@x.com", "secret")
	other := env.seedUser(t, "b@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := jsonRequest("PUT", "/api/user/email/"+other.ID, fiber.Map{"email": "hijack@x.com"})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestUpdateEmailConflict(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "a@x.com", "secret")
	env.seedUser(t, "taken@x.com", "secret")

	resp, err := env.app.Test(jsonRequest("POST", "/login", fiber.Map{
		"email": "a@x.com", "password": "secret",
	}))
	assert.NoError(t, err)
	cookie := sessionCookie(t, resp)

	req := jsonRequest("PUT", "/api/user/email/"+user.ID, fiber.Map{"email": "taken@x.com"})
	req.AddCookie(cookie)
	resp, err = env.app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Email already in use", body["message"])
	assert.Equal(t, "CONFLICT", body["code"])
}

func TestProductsByCategoryRouteDistinctFromProductByID(t *testing.T) {
	env := newTestEnv(t)

	category := &domain.Category{Name: "Plumbing", ImageURL: "http://img", AssetID: "asset-1"}
	assert.NoError(t, env.categories.Create(context.Background(), category))
	product := &domain.Product{Title: "Pipe fix", Price: 50, CategoryID: category.ID, ImageURL: "http://img", AssetID: "asset-2"}
	assert.NoError(t, env.products.Create(context.Background(), product))

	resp, err := env.app.Test(httptest.NewRequest("GET", "/api/products/category/"+category.ID, nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var list []map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)
	assert.Equal(t, product.ID, list[0]["id"])

	resp, err = env.app.Test(httptest.NewRequest("GET", "/api/products/"+product.ID, nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHealthLive(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.app.Test(httptest.NewRequest("GET", "/health/live", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "alive", body["status"])
}
