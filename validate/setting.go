package validate

import (
	"fmt"

	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
)

func UpsertSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Params("key")
		if key == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Setting key is required", nil, "key")
		}

		var input model.UpsertSettingInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := input.Value.Validate(); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Malformed setting value", err, "value")
		}

		c.Locals("settingKey", key)
		c.Locals("inputUpsertSetting", input)
		return c.Next()
	}
}

func SaveSortOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contextKey := c.Params("context")
		if contextKey == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Sort order context is required", nil, "context")
		}

		var input model.SaveSortOrderInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("sortContext", contextKey)
		c.Locals("inputSortOrder", input)
		return c.Next()
	}
}
