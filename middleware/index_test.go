package middleware

import (
	"net/http/httptest"
	"testing"

	"teatr_manager/identity"
	"teatr_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *model.CurrentUser
		want int
	}{
		{"Admin", &model.CurrentUser{ID: 1, Role: "admin"}, fiber.StatusOK},
		{"RegularUser", &model.CurrentUser{ID: 2, Role: "user"}, fiber.StatusForbidden},
		{"Anonymous", nil, fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(Identity(identity.StaticResolver{User: tt.user}))
			app.Get("/admin", RequireAdmin(), func(c *fiber.Ctx) error {
				return c.SendString(identity.Current(c).Role)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/admin", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestRequireUser(t *testing.T) {
	app := fiber.New()
	app.Use(Identity(identity.StaticResolver{}))
	app.Post("/review", RequireUser(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

	resp, err := app.Test(httptest.NewRequest("POST", "/review", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWebSocketUpgradeRejectsPlainRequests(t *testing.T) {
	app := fiber.New()
	app.Get("/ws", WebSocketUpgrade(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
