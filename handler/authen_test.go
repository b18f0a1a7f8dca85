package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Handlers that resolve the account themselves must answer 401 when the
// resolution fails, not fall through to an empty 200.
func TestMeWithoutTokenIsUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Get("/me", Me)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMeWithTokenMissingAccountIdIsUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Get("/me", func(c *fiber.Ctx) error {
		// Valid token shape, but the accountId claim is absent.
		c.Locals("user", jwt.New(jwt.SigningMethodHS256))
		return c.Next()
	}, Me)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/me", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateAccountWithoutTokenIsUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Post("/account", CreateAccount)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/account", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
