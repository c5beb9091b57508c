package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"foodstall-backend/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	adminEmail    = "admin@stall.test"
	adminPassword = "secret-admin"
)

type apiEnv struct {
	t       *testing.T
	db      *gorm.DB
	redis   *miniredis.Miniredis
	handler http.Handler
}

func newAPIEnv(t *testing.T, env map[string]string) *apiEnv {
	t.Helper()

	t.Setenv("JWT_SECRET", "e2e-secret")
	t.Setenv("UPLOAD_DIR", t.TempDir())
	t.Setenv("RATE_LIMIT_LOGIN_PER_MINUTE", "0")
	for k, v := range env {
		t.Setenv(k, v)
	}

	cfg, log, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	log.SetOutput(io.Discard)

	db := testutil.NewDB(t)
	redisClient, mr := testutil.NewRedis(t)

	require.NoError(t, Seed(context.Background(), log, db, AdminAccount{Email: adminEmail, Password: adminPassword}))

	handler, err := NewHandler(cfg, log, db, redisClient)
	require.NoError(t, err)

	return &apiEnv{t: t, db: db, redis: mr, handler: handler}
}

func (e *apiEnv) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	e.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(e.t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)

	var decoded map[string]interface{}
	if rr.Body.Len() > 0 {
		_ = json.Unmarshal(rr.Body.Bytes(), &decoded)
	}
	return rr, decoded
}

func (e *apiEnv) login(email, password string) string {
	e.t.Helper()
	rr, body := e.do(http.MethodPost, "/api/login", "", map[string]string{"email": email, "password": password})
	require.Equal(e.t, http.StatusOK, rr.Code, rr.Body.String())
	user := body["user"].(map[string]interface{})
	return user["token"].(string)
}

func (e *apiEnv) count(table string) int64 {
	e.t.Helper()
	var n int64
	require.NoError(e.t, e.db.Table(table).Count(&n).Error)
	return n
}

func (e *apiEnv) createCategory(token string) string {
	e.t.Helper()
	rr, body := e.do(http.MethodPost, "/api/categories/createCategory", token, map[string]interface{}{
		"categoryName":        "Noodles",
		"categoryDescription": "Soups and noodles",
		"isHidden":            false,
	})
	require.Equal(e.t, http.StatusCreated, rr.Code, rr.Body.String())
	return body["category"].(map[string]interface{})["id"].(string)
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	env := newAPIEnv(t, nil)
	id := uuid.NewString()

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/foods/createFood"},
		{http.MethodPut, "/api/foods/updateFood/" + id},
		{http.MethodDelete, "/api/foods/deleteFood/" + id},
		{http.MethodPost, "/api/categories/createCategory"},
		{http.MethodPost, "/api/menus/createMenu"},
		{http.MethodGet, "/api/employees/getAllEmployees"},
		{http.MethodGet, "/api/invoices/getAllInvoices"},
		{http.MethodPost, "/api/invoices/createInvoice"},
		{http.MethodGet, "/api/roles/getAllRoles"},
		{http.MethodGet, "/api/user/getAllUsers"},
		{http.MethodDelete, "/api/user/deleteUser/" + id},
		{http.MethodPost, "/api/register"},
		{http.MethodGet, "/api/me"},
		{http.MethodPost, "/api/upload"},
		{http.MethodGet, "/api/auditLogs/getAllAuditLogs"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr, body := env.do(route.method, route.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "You must be logged in to access this resource.", body["message"])
		})
	}

	rr, _ := env.do(http.MethodGet, "/api/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCatalogReadsArePublic(t *testing.T) {
	env := newAPIEnv(t, nil)

	for _, path := range []string{"/api/foods/getAllFoods", "/api/categories/getAllCategories", "/api/menus/getAllMenus"} {
		rr, _ := env.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr, body := env.do(http.MethodGet, "/api/foods/getFoodById/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Food item not found", body["message"])
}

func TestFoodLifecycle(t *testing.T) {
	env := newAPIEnv(t, nil)
	token := env.login(adminEmail, adminPassword)

	t.Run("unknown category is rejected without persisting", func(t *testing.T) {
		rr, body := env.do(http.MethodPost, "/api/foods/createFood", token, map[string]interface{}{
			"name": "Pho", "price": 50000, "img": "x", "isHidden": false, "category": uuid.NewString(),
		})
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Category not found. Please provide a valid category ID.", body["message"])
		assert.Equal(t, int64(0), env.count("foods"))
	})

	t.Run("amounts the price column cannot hold are rejected", func(t *testing.T) {
		for _, price := range []interface{}{12.345, 1e10, -5} {
			rr, body := env.do(http.MethodPost, "/api/foods/createFood", token, map[string]interface{}{
				"name": "Pho", "price": price, "img": "x", "isHidden": false, "category": uuid.NewString(),
			})
			assert.Equal(t, http.StatusBadRequest, rr.Code, price)
			assert.Contains(t, body["error"], "price")
		}
		assert.Equal(t, int64(0), env.count("foods"))
	})

	t.Run("missing field fails validation", func(t *testing.T) {
		rr, body := env.do(http.MethodPost, "/api/foods/createFood", token, map[string]interface{}{
			"price": 50000, "img": "x", "isHidden": false, "category": uuid.NewString(),
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Validation failed", body["message"])
		assert.Contains(t, body["error"], "name")
	})

	categoryID := env.createCategory(token)

	rr, body := env.do(http.MethodPost, "/api/foods/createFood", token, map[string]interface{}{
		"name": "Pho", "price": 50000, "img": "x", "isHidden": false, "category": categoryID,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "Food created successfully", body["message"])
	assert.Equal(t, int64(1), env.count("foods"))

	created := body["food"].(map[string]interface{})
	foodID := created["id"].(string)
	assert.Equal(t, "Pho", created["name"])
	assert.Equal(t, float64(50000), created["price"])
	assert.Equal(t, false, created["isHidden"])
	assert.Equal(t, categoryID, created["category"])
	assert.NotEmpty(t, created["createdAt"])

	rr, body = env.do(http.MethodGet, "/api/foods/getFoodById/"+foodID, "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	fetched := body["food"].(map[string]interface{})
	for _, field := range []string{"id", "name", "price", "img", "isHidden", "category"} {
		assert.Equal(t, created[field], fetched[field], field)
	}

	rr, body = env.do(http.MethodPut, "/api/foods/updateFood/"+foodID, token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Please provide data to update.", body["message"])

	rr, body = env.do(http.MethodPut, "/api/foods/updateFood/"+foodID, token, map[string]interface{}{
		"name": "Pho Bo", "price": 55000, "img": "y", "isHidden": true, "category": categoryID,
	})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Pho Bo", body["food"].(map[string]interface{})["name"])

	rr, _ = env.do(http.MethodDelete, "/api/foods/deleteFood/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, body = env.do(http.MethodDelete, "/api/foods/deleteFood/"+foodID, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, foodID, body["food"].(map[string]interface{})["id"])
	assert.Equal(t, int64(0), env.count("foods"))
}

func TestRegistrationAndPermissions(t *testing.T) {
	env := newAPIEnv(t, nil)
	adminToken := env.login(adminEmail, adminPassword)

	staff := map[string]string{"email": "cashier@stall.test", "password": "cashier1", "roleName": "staff"}
	rr, body := env.do(http.MethodPost, "/api/register", adminToken, staff)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "User registered successfully", body["message"])

	rr, body = env.do(http.MethodPost, "/api/register", adminToken, staff)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Email already in use.", body["message"])
	var n int64
	require.NoError(t, env.db.Table("users").Where("email = ?", staff["email"]).Count(&n).Error)
	assert.Equal(t, int64(1), n)

	rr, body = env.do(http.MethodPost, "/api/register", adminToken, map[string]string{
		"email": "ghost@stall.test", "password": "ghost12", "roleName": "ghost",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid role specified", body["message"])

	staffToken := env.login(staff["email"], staff["password"])

	rr, body = env.do(http.MethodGet, "/api/me", staffToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	staffID := body["user"].(map[string]interface{})["id"].(string)

	rr, body = env.do(http.MethodPut, "/api/user/updateUser/"+staffID, adminToken, map[string]string{"roleName": "ghost"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Role not found. Please provide a valid role name.", body["message"])

	rr, _ = env.do(http.MethodGet, "/api/invoices/getAllInvoices", staffToken, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, body = env.do(http.MethodPost, "/api/categories/createCategory", staffToken, map[string]interface{}{
		"categoryName": "Drinks", "categoryDescription": "Cold drinks", "isHidden": false,
	})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "Access denied. Insufficient permissions.", body["message"])

	rr, _ = env.do(http.MethodPost, "/api/register", staffToken, map[string]string{"email": "x@stall.test", "password": "xxxxxx"})
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr, body = env.do(http.MethodGet, "/api/me", staffToken, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "staff", body["user"].(map[string]interface{})["role"])
}

func TestLoginLogout(t *testing.T) {
	env := newAPIEnv(t, nil)

	rr, body := env.do(http.MethodPost, "/api/login", "", map[string]string{"email": adminEmail, "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", body["message"])

	rr, body = env.do(http.MethodPost, "/api/login", "", map[string]string{"email": "nobody@stall.test", "password": "whatever"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Invalid email or password", body["message"])

	rr, body = env.do(http.MethodPost, "/api/login", "", map[string]string{"email": adminEmail, "password": adminPassword})
	require.Equal(t, http.StatusOK, rr.Code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "admin", user["role"])
	assert.NotZero(t, user["expiresIn"])
	token := user["token"].(string)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "foodstall_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, token, cookies[0].Value)

	rr, _ = env.do(http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr, body = env.do(http.MethodGet, "/api/logout", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Logged out successfully.", body["message"])

	rr, _ = env.do(http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// logging out without a session still succeeds
	rr, _ = env.do(http.MethodGet, "/api/logout", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLogoutFailsWhenSessionStoreIsDown(t *testing.T) {
	env := newAPIEnv(t, nil)
	token := env.login(adminEmail, adminPassword)

	env.redis.Close()

	rr, body := env.do(http.MethodGet, "/api/logout", token, nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotEqual(t, "Logged out successfully.", body["message"])
	assert.Empty(t, rr.Result().Cookies())
}

func TestRegisterDevIsDisabledByDefault(t *testing.T) {
	env := newAPIEnv(t, nil)
	rr, _ := env.do(http.MethodPost, "/api/register-dev", "", map[string]string{"email": "dev@stall.test", "password": "devdev"})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	enabled := newAPIEnv(t, map[string]string{"AUTH_ALLOW_DEV_REGISTER": "true"})
	rr, body := enabled.do(http.MethodPost, "/api/register-dev", "", map[string]string{"email": "dev@stall.test", "password": "devdev"})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "admin", body["user"].(map[string]interface{})["role"])
}

func TestLoginIsRateLimited(t *testing.T) {
	env := newAPIEnv(t, map[string]string{"RATE_LIMIT_LOGIN_PER_MINUTE": "2"})
	creds := map[string]string{"email": adminEmail, "password": "wrong-password"}

	for i := 0; i < 2; i++ {
		rr, _ := env.do(http.MethodPost, "/api/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	}
	rr, body := env.do(http.MethodPost, "/api/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "Too many requests. Please try again later.", body["message"])
}

func TestInvoiceFlow(t *testing.T) {
	env := newAPIEnv(t, nil)
	token := env.login(adminEmail, adminPassword)
	categoryID := env.createCategory(token)

	rr, body := env.do(http.MethodPost, "/api/foods/createFood", token, map[string]interface{}{
		"name": "Pho", "price": 50000, "img": "x", "isHidden": false, "category": categoryID,
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	foodID := body["food"].(map[string]interface{})["id"].(string)

	invoice := map[string]interface{}{
		"items":    []map[string]interface{}{{"food": foodID, "quantity": 2, "price": 50000, "sum": 100000}},
		"date":     "2024-05-01",
		"time":     "12:30",
		"subtotal": 100000,
		"total":    100000,
	}

	rr, _ = env.do(http.MethodPost, "/api/invoices/createInvoice", token, map[string]interface{}{
		"items":    []map[string]interface{}{{"food": uuid.NewString(), "quantity": 1, "price": 1, "sum": 1}},
		"date":     "2024-05-01",
		"time":     "12:30",
		"subtotal": 1,
		"total":    1,
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, int64(0), env.count("invoices"))

	rr, body = env.do(http.MethodPost, "/api/invoices/createInvoice", token, invoice)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := body["invoice"].(map[string]interface{})
	invoiceID := created["id"].(string)
	assert.Equal(t, float64(0), created["discount"])

	rr, body = env.do(http.MethodPut, "/api/invoices/updateInvoiceDateTime/"+invoiceID, token, map[string]string{"time": "13:00"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	updated := body["invoice"].(map[string]interface{})
	assert.Equal(t, "13:00", updated["time"])
	assert.Equal(t, "2024-05-01", updated["date"])

	rr, _ = env.do(http.MethodDelete, "/api/invoices/deleteInvoiceById/"+invoiceID, token, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr, _ = env.do(http.MethodDelete, "/api/invoices/deleteInvoiceById/"+invoiceID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAuditTrailAndOperationalEndpoints(t *testing.T) {
	env := newAPIEnv(t, nil)
	token := env.login(adminEmail, adminPassword)
	env.createCategory(token)

	rr, body := env.do(http.MethodGet, "/api/auditLogs/getAllAuditLogs", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, body["auditLogs"])

	rr, _ = env.do(http.MethodGet, "/api/auditLogs/getAuditLogById/abc", token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr, body = env.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))

	rr, _ = env.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `route="/api/categories/createCategory"`)

	rr, body = env.do(http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Route not found", body["message"])
}
