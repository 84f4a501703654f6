package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	migration "cooknextdoor/cmd/database/migrate"
	"cooknextdoor/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "e2e-test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migration.Migrate(db))

	app, err := NewApp(db)
	require.NoError(t, err)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func register(t *testing.T, app *fiber.App, name, email, role string) domain.AuthResponse {
	t.Helper()
	resp, body := doJSON(t, app, "POST", "/api/auth/register", "", domain.RegisterRequest{
		Name: name, Email: email, Password: "secret123", Role: role, Location: "Testville",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	var auth domain.AuthResponse
	require.NoError(t, json.Unmarshal(body, &auth))
	require.NotEmpty(t, auth.Token)
	return auth
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "OK", parsed["status"])
	assert.NotEmpty(t, parsed["timestamp"])
	assert.NotEmpty(t, parsed["environment"])
}

func TestRegisterDuplicateEmailIs400(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "Chef Mario", "mario@example.com", "seller")

	resp, _ := doJSON(t, app, "POST", "/api/auth/register", "", domain.RegisterRequest{
		Name: "Impostor", Email: "mario@example.com", Password: "secret123",
		Role: "buyer", Location: "Elsewhere",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginWrongPasswordIs400(t *testing.T) {
	app := newTestApp(t)

	register(t, app, "Chef Mario", "mario@example.com", "seller")

	resp, _ := doJSON(t, app, "POST", "/api/auth/login", "", domain.LoginRequest{
		Email: "mario@example.com", Password: "wrong-password",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProtectedRouteWithoutTokenIs401(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/orders/buyer", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMarketplaceFlow(t *testing.T) {
	app := newTestApp(t)

	seller := register(t, app, "Chef S", "seller@example.com", "seller")
	buyer := register(t, app, "Buyer B", "buyer@example.com", "buyer")

	// seller lists a meal
	resp, body := doJSON(t, app, "POST", "/api/meals", seller.Token, domain.CreateMealRequest{
		Name: "Soup", Description: "Hearty soup", Price: 5.00,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	var created domain.MealResponse
	require.NoError(t, json.Unmarshal(body, &created))

	// public listing shows it with the seller projected
	resp, body = doJSON(t, app, "GET", "/api/meals", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listed []domain.MealResponse
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	require.NotNil(t, listed[0].Seller)
	assert.Equal(t, "Chef S", listed[0].Seller.Name)
	assert.Equal(t, "Testville", listed[0].Seller.Location)

	// buyer cannot edit someone else's meal
	resp, _ = doJSON(t, app, "PUT", "/api/meals/"+created.ID, buyer.Token, map[string]any{"price": 1.00})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// buyer orders two
	resp, body = doJSON(t, app, "POST", "/api/orders", buyer.Token, map[string]any{
		"mealId": created.ID, "quantity": 2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, string(body))
	var placed domain.OrderResponse
	require.NoError(t, json.Unmarshal(body, &placed))
	assert.InDelta(t, 10.00, placed.TotalPrice, 0.0001)
	assert.Equal(t, "pending", placed.Status)
	assert.Equal(t, seller.User.ID, placed.SellerID)

	// the buyer cannot move the status; the seller can
	resp, _ = doJSON(t, app, "PUT", "/api/orders/"+placed.ID, buyer.Token, map[string]any{"status": "delivered"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, body = doJSON(t, app, "PUT", "/api/orders/"+placed.ID, seller.Token, map[string]any{"status": "delivered"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))

	// buyer's listing reflects the new status
	resp, body = doJSON(t, app, "GET", "/api/orders/buyer", buyer.Token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var orders []domain.OrderResponse
	require.NoError(t, json.Unmarshal(body, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "delivered", orders[0].Status)
	require.NotNil(t, orders[0].Meal)
	assert.Equal(t, "Soup", orders[0].Meal.Name)

	// dashboards
	resp, body = doJSON(t, app, "GET", "/api/dashboard/seller", seller.Token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sellerStats domain.SellerDashboardResponse
	require.NoError(t, json.Unmarshal(body, &sellerStats))
	assert.Equal(t, int64(1), sellerStats.TotalMeals)
	assert.Equal(t, int64(1), sellerStats.TotalOrders)
	assert.Equal(t, int64(1), sellerStats.DeliveredOrders)
	assert.InDelta(t, 10.00, sellerStats.TotalRevenue, 0.0001)

	// seller deletes the meal; public listing is empty again
	resp, _ = doJSON(t, app, "DELETE", "/api/meals/"+created.ID, seller.Token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, app, "GET", "/api/meals", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	listed = nil
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Empty(t, listed)

	// deleting it again is a 404
	resp, _ = doJSON(t, app, "DELETE", "/api/meals/"+created.ID, seller.Token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestOrderUnknownMealIs404(t *testing.T) {
	app := newTestApp(t)

	buyer := register(t, app, "Buyer B", "buyer@example.com", "buyer")

	resp, _ := doJSON(t, app, "POST", "/api/orders", buyer.Token, map[string]any{
		"mealId": "99999999-9999-9999-9999-999999999999", "quantity": 1,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
