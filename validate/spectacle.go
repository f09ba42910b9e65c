package validate

import (
	"fmt"
	"path/filepath"
	"strings"

	"teatr_manager/model"

	"github.com/gofiber/fiber/v2"
)

var posterExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".gif": true}

// SpectacleForm validates the create and edit form. The poster file is optional.
func SpectacleForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SpectacleInput
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}

		if file, err := c.FormFile("poster"); err == nil && file != nil {
			ext := strings.ToLower(filepath.Ext(file.Filename))
			if !posterExtensions[ext] {
				return badRequest(c, fmt.Errorf("unsupported poster format %q", ext))
			}
			input.Poster = file
		}

		c.Locals("inputSpectacle", input)
		return c.Next()
	}
}

func CastForm() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CastInput
		if err := c.BodyParser(&input); err != nil {
			return badRequest(c, err)
		}
		if err := validate.Struct(input); err != nil {
			return badRequest(c, err)
		}

		c.Locals("inputCast", input)
		return c.Next()
	}
}
