package handler

import (
	"context"

	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSpectacleForm returns the genres offered by the create form.
func (h *Handler) GetSpectacleForm(c *fiber.Ctx) error {
	genres, err := h.Spectacles.Genres(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"genres": genres})
}

func (h *Handler) CreateSpectacle(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSpectacle").(model.SpectacleInput)
	if !ok {
		return localsError(c, "inputSpectacle")
	}

	id, err := h.Spectacles.Create(c.UserContext(), input, func(ctx context.Context, _ uint) (string, error) {
		if input.Poster == nil {
			return constants.DEFAULT_POSTER_URL, nil
		}
		return h.Posters.Save(ctx, input.Poster, input.Title)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	utils.Log.WithField("spectacle_id", id).Info("spectacle created")
	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"id": id})
}

func (h *Handler) GetSpectacleEdit(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	view, err := h.Spectacles.EditView(c.UserContext(), id)
	if err != nil {
		return storeError(c, err, constants.SPECTACLE_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, view)
}

func (h *Handler) UpdateSpectacle(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	input, ok := c.Locals("inputSpectacle").(model.SpectacleInput)
	if !ok {
		return localsError(c, "inputSpectacle")
	}

	var posterURL *string
	if input.Poster != nil {
		url, err := h.Posters.Save(c.UserContext(), input.Poster, input.Title)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		posterURL = &url
	}
	if err := h.Spectacles.Update(c.UserContext(), id, input, posterURL); err != nil {
		return storeError(c, err, constants.SPECTACLE_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id})
}

func (h *Handler) AddCast(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	input, ok := c.Locals("inputCast").(model.CastInput)
	if !ok {
		return localsError(c, "inputCast")
	}
	if err := h.Spectacles.AddCast(c.UserContext(), id, input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, model.SpectacleActor{SpectacleId: id, ActorId: input.ActorId, RoleName: input.RoleName})
}

// RemoveCast drops the cast entry only. The actor stays.
func (h *Handler) RemoveCast(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	input, ok := c.Locals("inputCast").(model.CastInput)
	if !ok {
		return localsError(c, "inputCast")
	}
	if err := h.Spectacles.RemoveCast(c.UserContext(), id, input.ActorId); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"spectacleId": id, "actorId": input.ActorId})
}
