package handler

import (
	"errors"
	"time"

	"teatr_manager/config"
	"teatr_manager/constants"
	"teatr_manager/helper"
	"teatr_manager/identity"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func tokenTTL() time.Duration {
	return time.Duration(config.ConfigInt("JWT_TTL_HOURS", 24)) * time.Hour
}

func (h *Handler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return localsError(c, "inputLogin")
	}

	user, err := h.Users.FindByUsername(c.UserContext(), input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("unknown user"))
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
	}
	if user.PasswordHash == nil || !helper.CheckPasswordHash(input.Password, *user.PasswordHash) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_CREDENTIALS, errors.New("password mismatch"))
	}

	ttl := tokenTTL()
	token, err := identity.IssueToken(h.JWTSecret, user.CurrentUser(), ttl)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     identity.CookieName,
		Value:    token,
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	utils.Log.WithField("username", user.Username).Info("user logged in")
	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: token})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(identity.CookieName)
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *Handler) GetMe(c *fiber.Ctx) error {
	user := identity.Current(c)
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}
