package validate

import (
	"errors"

	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// ActorForm validates the actor create and edit form. An empty base salary
// stays nil.
func ActorForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ActorInput
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if !isJSON(c) {
			salary, err := utils.ParseDecimal(c.FormValue("base_salary"))
			if err != nil {
				return badRequest(c, err)
			}
			input.BaseSalary = salary
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}
		if input.BaseSalary != nil && input.BaseSalary.IsNegative() {
			return badRequest(c, errors.New("base salary must not be negative"))
		}

		c.Locals("inputActor", input)
		return c.Next()
	}
}
