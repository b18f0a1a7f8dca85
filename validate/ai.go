package validate

import (
	"fmt"

	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
)

func OptimizeText() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.OptimizeTextInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		// Single-line fields are interpolated into the prompt.
		input.Title = utils.SanitizeSingleLine(input.Title)
		input.Keyword = utils.SanitizeSingleLine(input.Keyword)

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputOptimizeText", input)
		return c.Next()
	}
}

func GenerateAltText() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.GenerateAltTextInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		input.Title = utils.SanitizeSingleLine(input.Title)
		if input.Subtitle != nil {
			input.Subtitle = utils.StringPtr(utils.SanitizeSingleLine(*input.Subtitle))
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputGenerateAltText", input)
		return c.Next()
	}
}
