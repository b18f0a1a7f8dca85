package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"theater_dashboard/config"
	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/helper"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
)

// Per-account fixed window limit on gateway calls.
const (
	aiRateLimitMax    = 20
	aiRateLimitWindow = time.Minute
)

// The ALT-text prompt asks for at most 125 characters; clamp in case the
// model overruns anyway.
const altTextMaxRunes = 125

func clampAltText(s string) string {
	return utils.TruncateRunes(strings.TrimSpace(s), altTextMaxRunes)
}

var aiHTTPClient = &http.Client{Timeout: 90 * time.Second}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// allowAIRequest counts requests per account in redis. Fails open when redis
// is unreachable: losing the limiter must not take text generation down.
func allowAIRequest(accountId uint) bool {
	ctx := context.Background()
	key := fmt.Sprintf("ai_rate:%d", accountId)

	count, err := database.Redis.Incr(ctx, key).Result()
	if err != nil {
		log.Printf("ai rate limit redis error: %v", err)
		return true
	}
	if count == 1 {
		database.Redis.Expire(ctx, key, aiRateLimitWindow)
	}
	return count <= aiRateLimitMax
}

// callAIGateway posts a chat completion and returns the first choice's
// content. The gateway's 429 and 402 statuses are passed through so the
// caller can map them onto its own response.
func callAIGateway(payload chatRequest) (string, int, error) {
	gatewayURL := strings.TrimRight(config.Config("AI_GATEWAY_URL"), "/") + "/v1/chat/completions"
	apiKey := config.Config("AI_GATEWAY_API_KEY")
	if apiKey == "" {
		return "", fiber.StatusInternalServerError, errors.New("AI_GATEWAY_API_KEY is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fiber.StatusInternalServerError, err
	}

	req, err := http.NewRequest(http.MethodPost, gatewayURL, bytes.NewReader(body))
	if err != nil {
		return "", fiber.StatusInternalServerError, err
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := aiHTTPClient.Do(req)
	if err != nil {
		return "", fiber.StatusBadGateway, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		log.Printf("AI gateway error: %d %s", resp.StatusCode, string(respBody))
		switch resp.StatusCode {
		case http.StatusTooManyRequests, http.StatusPaymentRequired:
			return "", resp.StatusCode, errors.New("gateway refused the request")
		default:
			return "", fiber.StatusInternalServerError, errors.New("gateway request failed")
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fiber.StatusInternalServerError, err
	}
	if len(parsed.Choices) == 0 {
		return "", fiber.StatusInternalServerError, errors.New("gateway returned no choices")
	}
	return parsed.Choices[0].Message.Content, fiber.StatusOK, nil
}

func mapGatewayError(c *fiber.Ctx, status int, err error) error {
	switch status {
	case http.StatusTooManyRequests:
		return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.ERROR_AI_RATE_LIMIT, err)
	case http.StatusPaymentRequired:
		return utils.ErrorResponse(c, fiber.StatusPaymentRequired, constants.ERROR_AI_NO_CREDITS, err)
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_AI_GATEWAY, err)
	}
}

// OptimizeText rewrites a show description into website copy. The result is
// returned to the dashboard, which saves it back as an ordinary web_text
// update; this endpoint never touches the show record.
func OptimizeText(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, errors.New("account could not be resolved"))
	}
	if !allowAIRequest(claim.AccountId) {
		return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.ERROR_AI_RATE_LIMIT, nil)
	}

	input, ok := c.Locals("inputOptimizeText").(model.OptimizeTextInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	aiModel := "google/gemini-3-flash-preview"
	if input.Model != nil && *input.Model != "" {
		aiModel = *input.Model
	}
	wordLimit := 150
	if input.MaxWords != nil {
		wordLimit = *input.MaxWords
	}
	keyword := input.Keyword
	if keyword == "" {
		keyword = input.Title
	}

	systemPrompt := "Je bent een marketingschrijver voor een stadstheater. Herschrijf voorstellingsteksten voor de website. Schrijf altijd in het Nederlands."
	userPrompt := fmt.Sprintf(`Herschrijf deze voorstellingstekst voor de theaterwebsite. Maximaal %d woorden. Wervend en uitnodigend. Verwerk het zoekwoord '%s' op een natuurlijke manier. Sluit af met een call-to-action. Behoud de kern van de inhoud.

Titel: %s

Originele tekst:
%s`, wordLimit, keyword, input.Title, input.Text)

	content, status, err := callAIGateway(chatRequest{
		Model: aiModel,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	})
	if err != nil {
		return mapGatewayError(c, status, err)
	}

	return c.JSON(fiber.Map{"text": content})
}

// GenerateAltText asks the vision model for a short Dutch ALT text for a show
// image.
func GenerateAltText(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, errors.New("account could not be resolved"))
	}
	if !allowAIRequest(claim.AccountId) {
		return utils.ErrorResponse(c, fiber.StatusTooManyRequests, constants.ERROR_AI_RATE_LIMIT, nil)
	}

	input, ok := c.Locals("inputGenerateAltText").(model.GenerateAltTextInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	showName := input.Title
	if input.Subtitle != nil && *input.Subtitle != "" {
		showName = input.Title + " - " + *input.Subtitle
	}

	systemPrompt := `Je bent een SEO-specialist voor een stadstheater. Genereer een beknopte, beschrijvende ALT-tekst in het Nederlands voor een afbeelding van een voorstelling. De ALT-tekst moet:
- Maximaal 125 tekens zijn
- De voorstelling beschrijven op basis van wat er op de afbeelding te zien is
- De naam van de voorstelling bevatten
- Geen aanhalingstekens gebruiken
Geef ALLEEN de ALT-tekst terug, zonder verdere uitleg.`

	content, status, err := callAIGateway(chatRequest{
		Model: "google/gemini-2.5-flash",
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: []map[string]any{
				{"type": "text", "text": fmt.Sprintf("Genereer een ALT-tekst voor de afbeelding van de voorstelling \"%s\".", showName)},
				{"type": "image_url", "image_url": map[string]string{"url": input.ImageUrl}},
			}},
		},
	})
	if err != nil {
		return mapGatewayError(c, status, err)
	}

	return c.JSON(fiber.Map{"altText": clampAltText(content)})
}
