package middleware

import (
	"net/http/httptest"
	"testing"

	"cooknextdoor/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	jwtService, err := jwt.NewJWTService("test-secret")
	require.NoError(t, err)

	app := fiber.New()
	m := NewMiddleware()
	app.Get("/protected", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app, jwtService
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	app, _ := newAuthTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	app, jwtService := newAuthTestApp(t)

	token, err := jwtService.GenerateTokenUser("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", token) // no Bearer prefix

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	app, _ := newAuthTestApp(t)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app, jwtService := newAuthTestApp(t)

	token, err := jwtService.GenerateTokenUser("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
