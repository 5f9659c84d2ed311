package middleware

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/pkg/jwt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	app.Get("/protected", NewMiddleware().AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"operator_id": c.Locals("operator_id")})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := newProtectedApp(jwt.NewJWTService())

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsInvalidToken(t *testing.T) {
	app := newProtectedApp(jwt.NewJWTService())

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareForbidsNonOperator(t *testing.T) {
	jwtService := jwt.NewJWTService()
	app := newProtectedApp(jwtService)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenOperator("u-1", "player"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsOperator(t *testing.T) {
	jwtService := jwt.NewJWTService()
	app := newProtectedApp(jwtService)

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+jwtService.GenerateTokenOperator("op-1", domain.RoleOperator))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "op-1")
}
