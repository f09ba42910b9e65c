package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"teatr_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBooking(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantSeats   []uint
	}{
		{"FormRepeated", "application/x-www-form-urlencoded", "seanceId=2&selectedSeats=1&selectedSeats=3", fiber.StatusOK, []uint{1, 3}},
		{"FormComma", "application/x-www-form-urlencoded", "seanceId=2&selectedSeats=4,5", fiber.StatusOK, []uint{4, 5}},
		{"FormNoSeats", "application/x-www-form-urlencoded", "seanceId=2", fiber.StatusOK, nil},
		{"JSON", "application/json", `{"seanceId":2,"selectedSeats":[7]}`, fiber.StatusOK, []uint{7}},
		{"BadSeat", "application/x-www-form-urlencoded", "seanceId=2&selectedSeats=a", fiber.StatusBadRequest, nil},
		{"MissingSeance", "application/json", `{"selectedSeats":[7]}`, fiber.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got model.BookingInput
			app := fiber.New()
			app.Post("/book", CreateBooking(), func(c *fiber.Ctx) error {
				got = c.Locals("inputBooking").(model.BookingInput)
				return c.SendStatus(fiber.StatusOK)
			})

			req := httptest.NewRequest("POST", "/book", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == fiber.StatusOK {
				assert.Equal(t, uint(2), got.SeanceId)
				assert.Equal(t, tt.wantSeats, got.SelectedSeats)
			}
		})
	}
}

func TestSeanceForm(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"Valid", "spectacle_id=1&hall_id=2&start_time=2026-11-02T19:00&price=45,50", fiber.StatusOK},
		{"MissingStart", "spectacle_id=1&hall_id=2&price=45", fiber.StatusBadRequest},
		{"MissingPrice", "spectacle_id=1&hall_id=2&start_time=2026-11-02T19:00", fiber.StatusBadRequest},
		{"NegativePrice", "spectacle_id=1&hall_id=2&start_time=2026-11-02T19:00&price=-1", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/seance", SeanceForm(), func(c *fiber.Ctx) error {
				in := c.Locals("inputSeance").(model.SeanceInput)
				return c.SendString(in.Price.String())
			})

			req := httptest.NewRequest("POST", "/seance", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetById(t *testing.T) {
	app := fiber.New()
	app.Get("/spectacle/:id", GetById("id"), func(c *fiber.Ctx) error {
		return c.JSON(c.Locals("inputId"))
	})

	for path, want := range map[string]int{
		"/spectacle/12":  fiber.StatusOK,
		"/spectacle/abc": fiber.StatusBadRequest,
		"/spectacle/0":   fiber.StatusBadRequest,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}
