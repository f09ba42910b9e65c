package validate

import (
	"teatr_manager/model"

	"github.com/gofiber/fiber/v2"
)

func GenerateReport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReportRequest
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}

		c.Locals("inputReport", input)
		return c.Next()
	}
}
