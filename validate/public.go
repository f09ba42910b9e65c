package validate

import (
	"teatr_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ReviewInput
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}

		c.Locals("inputReview", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}

		c.Locals("inputLogin", input)
		return c.Next()
	}
}

func UpdatePrices() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdatePricesInput
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}

		c.Locals("inputPrices", input)
		return c.Next()
	}
}
