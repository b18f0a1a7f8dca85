package validate

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetById(t *testing.T) {
	app := fiber.New()
	app.Get("/item/:id", GetById("id"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"id": c.Locals("inputId")})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/item/42", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 42, body["id"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/item/not-a-number", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
