package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateShow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowInput
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

		if strings.TrimSpace(input.Title) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Title must not be blank", nil, "title")
		}

		var existing model.Show
		err := database.DB.Where("season = ? AND title = ?", input.Season, input.Title).First(&existing).Error
		if err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "A show with this title already exists in the season", nil, "title")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputCreateShow", input)
		return c.Next()
	}
}

func EditShow(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		showId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditShowInput
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

		if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Title must not be blank", nil, "title")
		}

		var show model.Show
		if err := database.DB.First(&show, showId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("showId", uint(showId))
		c.Locals("inputEditShow", input)
		return c.Next()
	}
}

func FilterShows() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.FilterShowInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputFilterShows", input)
		return c.Next()
	}
}

func DuplicateShow(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		showId, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.DuplicateShowInput
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

		c.Locals("showId", uint(showId))
		c.Locals("inputDuplicateShow", input)
		return c.Next()
	}
}
