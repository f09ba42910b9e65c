package handler

import (
	"fmt"

	"teatr_manager/constants"
	"teatr_manager/identity"
	"teatr_manager/model"
	"teatr_manager/service"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetBookingView returns the seance header, the hall seats and the seats
// already sold.
func (h *Handler) GetBookingView(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	ctx := c.UserContext()
	detail, err := h.Seances.BookingDetail(ctx, id)
	if err != nil {
		return storeError(c, err, constants.SEANCE_NOT_FOUND)
	}
	seats, err := h.Seances.HallSeats(ctx, detail.HallId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	taken, err := h.Seances.TakenSeatIDs(ctx, id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.BookingView{Seance: detail, Seats: seats, BookedIds: taken})
}

func (h *Handler) CreateBooking(c *fiber.Ctx) error {
	input, ok := c.Locals("inputBooking").(model.BookingInput)
	if !ok {
		return localsError(c, "inputBooking")
	}
	user := identity.Current(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, fmt.Errorf("no user"))
	}

	res, err := h.Booking.Book(c.UserContext(), user.ID, input.SeanceId, input.SelectedSeats)
	if err != nil {
		status := fiber.StatusInternalServerError
		if service.IsValidationError(err) {
			status = fiber.StatusBadRequest
		}
		return utils.ErrorResponse(c, status, constants.ERROR_BOOKING+": "+err.Error(), err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, res)
}
