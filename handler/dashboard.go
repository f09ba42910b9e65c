package handler

import (
	"fmt"
	"time"

	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// DashboardRange reads ?from and ?to, defaulting to the current calendar year.
func DashboardRange(from, to string, now time.Time) (model.DashboardQuery, error) {
	q := model.DashboardQuery{
		From: fmt.Sprintf("%d-01-01", now.Year()),
		To:   fmt.Sprintf("%d-12-31", now.Year()),
	}
	if from != "" {
		if _, err := time.Parse(time.DateOnly, from); err != nil {
			return q, fmt.Errorf("invalid from date %q", from)
		}
		q.From = from
	}
	if to != "" {
		if _, err := time.Parse(time.DateOnly, to); err != nil {
			return q, fmt.Errorf("invalid to date %q", to)
		}
		q.To = to
	}
	return q, nil
}

func (h *Handler) GetAdminDashboard(c *fiber.Ctx) error {
	q, err := DashboardRange(c.Query("from"), c.Query("to"), time.Now())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INVALID_INPUT, err)
	}
	dash, err := h.Dashboards.Dashboard(c.UserContext(), q)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, dash)
}
