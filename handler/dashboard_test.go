package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSeason(t *testing.T) {
	assert.Equal(t, "25/26", decodeSeason("25%2F26"))
	assert.Equal(t, "25/26", decodeSeason("25/26"))
	assert.Equal(t, "", decodeSeason(""))
	// A stray percent sign is not valid encoding; the raw value passes through.
	assert.Equal(t, "25%2", decodeSeason("25%2"))
}

// Season labels contain a slash, so the path param arrives percent-encoded
// and must be decoded before it can match stored season values. The
// unencoded form is two path segments and never reaches the route.
func TestSeasonPathParamDecoding(t *testing.T) {
	app := fiber.New()
	app.Get("/dashboard/:season", func(c *fiber.Ctx) error {
		return c.SendString(decodeSeason(c.Params("season")))
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard/25%2F26", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "25/26", string(body))

	req = httptest.NewRequest(http.MethodGet, "/dashboard/25/26", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
