package validate

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"theater_dashboard/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The terminal handler echoes the validated input back, so tests can observe
// what the middleware stored in Locals.
func aiTestApp() *fiber.App {
	app := fiber.New()
	app.Post("/optimize", OptimizeText(), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("inputOptimizeText"))
	})
	app.Post("/alt-text", GenerateAltText(), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("inputGenerateAltText"))
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestOptimizeTextValidInput(t *testing.T) {
	app := aiTestApp()
	resp := postJSON(t, app, "/optimize", fiber.Map{
		"text":  "Een mooie voorstelling over vriendschap.",
		"title": "De Vrienden",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestOptimizeTextStripsNewlinesFromSingleLineFields(t *testing.T) {
	app := aiTestApp()
	resp := postJSON(t, app, "/optimize", fiber.Map{
		"text":    "body",
		"title":   "De\nVrienden",
		"keyword": "theater\r\nzoetermeer",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var echoed model.OptimizeTextInput
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&echoed))
	assert.Equal(t, "De Vrienden", echoed.Title)
	assert.Equal(t, "theater zoetermeer", echoed.Keyword)
}

func TestOptimizeTextRejectsMissingTitle(t *testing.T) {
	app := aiTestApp()
	resp := postJSON(t, app, "/optimize", fiber.Map{"text": "body"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOptimizeTextRejectsOversizedText(t *testing.T) {
	app := aiTestApp()
	resp := postJSON(t, app, "/optimize", fiber.Map{
		"text":  strings.Repeat("a", 50001),
		"title": "De Vrienden",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOptimizeTextRejectsOversizedTitle(t *testing.T) {
	app := aiTestApp()
	resp := postJSON(t, app, "/optimize", fiber.Map{
		"text":  "body",
		"title": strings.Repeat("t", 201),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerateAltTextRequiresImageUrl(t *testing.T) {
	app := aiTestApp()

	resp := postJSON(t, app, "/alt-text", fiber.Map{"title": "De Vrienden"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/alt-text", fiber.Map{
		"imageUrl": "not a url",
		"title":    "De Vrienden",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, app, "/alt-text", fiber.Map{
		"imageUrl": "https://cdn.example.com/scene.jpg",
		"title":    "De Vrienden",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
