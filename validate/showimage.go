package validate

import (
	"errors"
	"fmt"
	"strconv"

	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func requireShow(c *fiber.Ctx, key string) (uint, error) {
	params := c.Params(key)
	showId, err := strconv.Atoi(params)
	if err != nil {
		return 0, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	var show model.Show
	if err := database.DB.First(&show, showId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return 0, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return uint(showId), nil
}

func UploadSceneImage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		showId, err := requireShow(c, key)
		if showId == 0 {
			return err
		}

		file, err := c.FormFile("file")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "An image file is required", err, "file")
		}

		c.Locals("showId", showId)
		c.Locals("sceneFile", file)
		return c.Next()
	}
}

func SaveCrop(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		showId, err := requireShow(c, key)
		if showId == 0 {
			return err
		}

		var input model.SaveCropInput
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

		c.Locals("showId", showId)
		c.Locals("inputSaveCrop", input)
		return c.Next()
	}
}

func requireShowImage(c *fiber.Ctx, key string) (*model.ShowImage, error) {
	params := c.Params(key)
	imageId, err := strconv.Atoi(params)
	if err != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
	}

	var image model.ShowImage
	if err := database.DB.First(&image, imageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return nil, utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return &image, nil
}

func UpdateAltText(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		image, err := requireShowImage(c, key)
		if image == nil {
			return err
		}

		var input model.UpdateAltTextInput
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

		c.Locals("showImage", image)
		c.Locals("inputAltText", input)
		return c.Next()
	}
}

func UpdatePosition(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		image, err := requireShowImage(c, key)
		if image == nil {
			return err
		}

		var input model.UpdatePositionInput
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

		c.Locals("showImage", image)
		c.Locals("inputPosition", input)
		return c.Next()
	}
}

func DeleteShowImage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		image, err := requireShowImage(c, key)
		if image == nil {
			return err
		}

		c.Locals("showImage", image)
		return c.Next()
	}
}
