package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampAltText(t *testing.T) {
	assert.Equal(t, "Korte tekst", clampAltText("  Korte tekst \n"))

	long := strings.Repeat("a", 300)
	clamped := clampAltText(long)
	assert.Len(t, []rune(clamped), altTextMaxRunes)

	exact := strings.Repeat("b", altTextMaxRunes)
	assert.Equal(t, exact, clampAltText(exact))
}

func TestAIProxiesWithoutTokenAreUnauthorized(t *testing.T) {
	app := fiber.New()
	app.Post("/optimize-text", OptimizeText)
	app.Post("/generate-alt-text", GenerateAltText)

	for _, path := range []string{"/optimize-text", "/generate-alt-text"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}
