package handler

import (
	"errors"

	"theater_dashboard/config"
	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetShowQRCode renders a QR code pointing at the show's public page, for
// printed brochures. Requires the show to have an SEO slug.
func GetShowQRCode(c *fiber.Ctx) error {
	showId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	db := database.DB
	var show model.Show
	if err := db.First(&show, showId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if show.SeoSlug == nil || *show.SeoSlug == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Show has no SEO slug yet", nil, "seoSlug")
	}

	siteURL := config.ConfigDefault("PUBLIC_SITE_URL", "https://example-theater.nl")
	pageURL := siteURL + "/voorstellingen/" + *show.SeoSlug

	size := 256
	if s := c.QueryInt("size"); s >= 64 && s <= 1024 {
		size = s
	}

	png, err := utils.GenerateQRCode(pageURL, size)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
