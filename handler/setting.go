package handler

import (
	"errors"

	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/helper"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func GetSettings(c *fiber.Ctx) error {
	db := database.DB
	var settings []model.Setting
	if err := db.Find(&settings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	settingsMap := make(map[string]model.SettingValue, len(settings))
	for _, s := range settings {
		settingsMap[s.Key] = s.Value
	}
	return utils.SuccessResponse(c, fiber.StatusOK, settingsMap)
}

func UpsertSetting(c *fiber.Ctx) error {
	db := database.DB
	key, ok := c.Locals("settingKey").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputUpsertSetting").(model.UpsertSettingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	setting := model.Setting{Key: key, Value: input.Value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}

// GetSortOrder returns the persisted ordering for a context, reconciled with
// the default ids the caller supplies via repeated "default" query params:
// saved order wins, unknown saved ids drop out, new ids append.
func GetSortOrder(c *fiber.Ctx) error {
	contextKey := c.Params("context")
	if contextKey == "" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Sort order context is required", nil, "context")
	}

	defaults := parseDefaultIds(c)

	db := database.DB
	var setting model.Setting
	err := db.First(&setting, "key = ?", constants.SORT_ORDER_PREFIX+contextKey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ids": defaults, "saved": false})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	saved := setting.Value.StringList()
	merged := helper.MergeSortOrder(saved, defaults)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ids": merged, "saved": true})
}

func parseDefaultIds(c *fiber.Ctx) []string {
	var defaults []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("default") {
		if id := string(raw); id != "" {
			defaults = append(defaults, id)
		}
	}
	return defaults
}

func SaveSortOrder(c *fiber.Ctx) error {
	db := database.DB
	contextKey, ok := c.Locals("sortContext").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("inputSortOrder").(model.SaveSortOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	setting := model.Setting{
		Key:   constants.SORT_ORDER_PREFIX + contextKey,
		Value: model.StringListValue(input.IDs),
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ids": input.IDs})
}
