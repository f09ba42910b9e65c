package handler

import (
	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetAdminStats(c *fiber.Ctx) error {
	stats, err := h.Stats.AdminStats(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

func (h *Handler) UpdatePrices(c *fiber.Ctx) error {
	input, ok := c.Locals("inputPrices").(model.UpdatePricesInput)
	if !ok {
		return localsError(c, "inputPrices")
	}
	if err := h.Stats.UpdatePrices(c.UserContext(), input.Percentage); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PROCEDURE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, input)
}
