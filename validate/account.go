package validate

import (
	"errors"
	"fmt"

	"theater_dashboard/constants"
	"theater_dashboard/database"
	"theater_dashboard/model"
	"theater_dashboard/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput
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

		var existing model.Account
		err := database.DB.Where(&model.Account{Username: input.Username}).First(&existing).Error
		if err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Username is already taken", nil, "username")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputCreateAccount", input)
		return c.Next()
	}
}
