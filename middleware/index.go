package middleware

import (
	"errors"

	"teatr_manager/constants"
	"teatr_manager/identity"
	"teatr_manager/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Identity resolves the current user once per request. Resolver failures
// leave the request anonymous.
func Identity(r identity.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := r.Resolve(c)
		if err != nil {
			utils.Log.WithError(err).WithField("path", c.Path()).Warn("could not resolve user")
		}
		identity.Store(c, u)
		return c.Next()
	}
}

func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if identity.Current(c) == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
		}
		return c.Next()
	}
}

func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		u := identity.Current(c)
		if u == nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_LOGGED_IN, errors.New("no user"))
		}
		if !u.IsAdmin() {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("permission denied"))
		}
		return c.Next()
	}
}

// WebSocketUpgrade lets only upgrade requests through to a websocket handler.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}
