package validate

import (
	"errors"
	"strconv"
	"strings"

	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBooking accepts JSON or form posts. In forms selectedSeats may be
// repeated or comma separated. An empty selection is left to the booking
// service.
func CreateBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BookingInput
		if isJSON(c) {
			if err := c.BodyParser(&input); err != nil {
				return bookingError(c, err)
			}
		} else {
			id, err := strconv.ParseUint(strings.TrimSpace(c.FormValue("seanceId")), 10, 32)
			if err != nil {
				return bookingError(c, errors.New("invalid seance id"))
			}
			seats, err := utils.ParseUintList(formValues(c, "selectedSeats"))
			if err != nil {
				return bookingError(c, errors.New("invalid seat id"))
			}
			input = model.BookingInput{SeanceId: uint(id), SelectedSeats: seats}
		}

		if err := validate.Struct(input); err != nil {
			return bookingError(c, err)
		}

		c.Locals("inputBooking", input)
		return c.Next()
	}
}

func bookingError(c *fiber.Ctx, err error) error {
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_BOOKING+": "+err.Error(), err)
}
