package handler

import (
	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

func (h *Handler) GetActors(c *fiber.Ctx) error {
	actors, err := h.Actors.List(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actors)
}

func (h *Handler) GetActor(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	actor, err := h.Actors.Find(c.UserContext(), id)
	if err != nil {
		return storeError(c, err, constants.ACTOR_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actor)
}

// actorDetail builds the response for a saved actor form.
func actorDetail(id uint, input model.ActorInput, salary decimal.Decimal) (model.ActorDetail, error) {
	var detail model.ActorDetail
	if err := copier.Copy(&detail, &input); err != nil {
		return detail, err
	}
	detail.ID = id
	detail.Email = utils.StringPtr(input.Email)
	detail.BaseSalary = salary
	return detail, nil
}

func (h *Handler) CreateActor(c *fiber.Ctx) error {
	input, ok := c.Locals("inputActor").(model.ActorInput)
	if !ok {
		return localsError(c, "inputActor")
	}
	id, err := h.Actors.Create(c.UserContext(), input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}

	salary := decimal.NewFromInt(constants.DEFAULT_BASE_SALARY)
	if input.BaseSalary != nil {
		salary = *input.BaseSalary
	}
	detail, err := actorDetail(id, input, salary)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, detail)
}

func (h *Handler) UpdateActor(c *fiber.Ctx) error {
	id, ok := inputId(c)
	if !ok {
		return localsError(c, "inputId")
	}
	input, ok := c.Locals("inputActor").(model.ActorInput)
	if !ok {
		return localsError(c, "inputActor")
	}
	if err := h.Actors.Update(c.UserContext(), id, input); err != nil {
		return storeError(c, err, constants.ACTOR_NOT_FOUND)
	}
	actor, err := h.Actors.Find(c.UserContext(), id)
	if err != nil {
		return storeError(c, err, constants.ACTOR_NOT_FOUND)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, actor)
}
