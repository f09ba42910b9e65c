package validate

import (
	"errors"
	"strings"

	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func SeanceForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SeanceInput
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if !isJSON(c) {
			price, err := utils.ParseDecimal(c.FormValue("price"))
			if err != nil {
				return badRequest(c, err)
			}
			if price == nil {
				return badRequest(c, errors.New("price is required"))
			}
			input.Price = *price
		}

		input.StartTime = strings.TrimSpace(input.StartTime)
		if input.StartTime == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_START_TIME, errors.New("start_time is empty"))
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}
		if input.Price.IsNegative() {
			return badRequest(c, errors.New("price must not be negative"))
		}

		c.Locals("inputSeance", input)
		return c.Next()
	}
}
