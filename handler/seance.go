package handler

import (
	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) seanceFormData(c *fiber.Ctx) (model.SeanceFormData, error) {
	specs, err := h.Spectacles.Titles(c.UserContext())
	if err != nil {
		return model.SeanceFormData{}, err
	}
	halls, err := h.Seances.Halls(c.UserContext())
	if err != nil {
		return model.SeanceFormData{}, err
	}
	return model.SeanceFormData{Spectacles: specs, Halls: halls}, nil
}

func (h *Handler) GetSeanceForm(c *fiber.Ctx) error {
	data, err := h.seanceFormData(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, data)
}

func (h *Handler) CreateSeance(c *fiber.Ctx) error {
	input, ok := c.Locals("inputSeance").(model.SeanceInput)
	if !ok {
		return localsError(c, "inputSeance")
	}
	if err := h.Seances.Create(c.UserContext(), input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func (h *Handler) GetSeanceEdit(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	seance, err := h.Seances.Find(c.UserContext(), id)
	if err != nil {
		return storeError(c, err, constants.SEANCE_NOT_FOUND)
	}
	data, err := h.seanceFormData(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.SeanceEditView{
		Seance:        seance,
		FormattedTime: seance.FormattedTime(),
		Spectacles:    data.Spectacles,
		Halls:         data.Halls,
	})
}

func (h *Handler) UpdateSeance(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	input, ok := c.Locals("inputSeance").(model.SeanceInput)
	if !ok {
		return localsError(c, "inputSeance")
	}
	if err := h.Seances.Update(c.UserContext(), id, input); err != nil {
		return storeError(c, err, constants.SEANCE_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"id": id})
}
