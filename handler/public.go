package handler

import (
	"fmt"
	"strconv"

	"teatr_manager/constants"
	"teatr_manager/identity"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetHome lists spectacles newest premiere first, optionally for one genre.
func (h *Handler) GetHome(c *fiber.Ctx) error {
	var genre *uint
	if raw := c.Query("genre"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		id := uint(v)
		genre = &id
	}

	ctx := c.UserContext()
	specs, err := h.Spectacles.List(ctx, genre)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	genres, err := h.Spectacles.Genres(ctx)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.HomeView{Spectacles: specs, Genres: genres, SelectedGenre: genre})
}

func (h *Handler) GetSpectacle(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	detail, err := h.Spectacles.Detail(c.UserContext(), id)
	if err != nil {
		return storeError(c, err, constants.SPECTACLE_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, detail)
}

func (h *Handler) CreateReview(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	input, ok := c.Locals("inputReview").(model.ReviewInput)
	if !ok {
		return localsError(c, "inputReview")
	}
	user := identity.Current(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, fmt.Errorf("no user"))
	}
	if err := h.Spectacles.AddReview(c.UserContext(), user.ID, id, input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, model.Review{
		UserId:      user.ID,
		SpectacleId: id,
		Rating:      input.Rating,
		Comment:     input.Comment,
	})
}
