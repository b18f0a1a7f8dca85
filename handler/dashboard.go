package handler

import (
	"net/url"

	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/helper"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
)

// decodeSeason recovers a season label from a path parameter. Labels contain
// a slash ("25/26"), so clients send them percent-encoded and fiber hands the
// raw value back still encoded.
func decodeSeason(raw string) string {
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// GetSeasonDashboard aggregates a season's checklist state. Everything is
// recomputed from the stored rows on each request: the show record and its
// image set are the single source of truth, a persisted status could drift.
func GetSeasonDashboard(c *fiber.Ctx) error {
	season := decodeSeason(c.Params("season"))
	if season == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Season is required", nil, "season")
	}

	db := database.DB
	var shows []model.Show
	if err := db.Preload("Images").Where("season = ?", season).Order("title ASC").Find(&shows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	summary := helper.SummarizeSeason(season, shows)
	rows := make([]model.ShowWithStatus, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, helper.WithStatus(show))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"summary": summary,
		"shows":   rows,
	})
}

// GetSeasons lists the season labels present in the store plus the label the
// calendar currently falls in, so the frontend can offer navigation.
func GetSeasons(c *fiber.Ctx) error {
	db := database.DB
	var seasons []string
	if err := db.Model(&model.Show{}).Distinct("season").Order("season ASC").Pluck("season", &seasons).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"seasons": seasons,
		"current": helper.CurrentSeasonNow(),
	})
}
