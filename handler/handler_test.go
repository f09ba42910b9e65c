package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"teatr_manager/constants"
	"teatr_manager/identity"
	"teatr_manager/middleware"
	"teatr_manager/model"
	"teatr_manager/report"
	"teatr_manager/service"
	"teatr_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type emptySource struct{}

func (emptySource) SalesByGenre(context.Context, report.Filter) ([]model.SalesRow, error) {
	return nil, nil
}
func (emptySource) EmployeesHierarchy(context.Context, report.Filter) ([]model.EmployeeRow, error) {
	return nil, nil
}
func (emptySource) TopSpectacles(context.Context, report.Filter) ([]model.ChartRow, error) {
	return nil, nil
}
func (emptySource) ReservationInvoices(context.Context, report.Filter) ([]model.InvoiceRow, error) {
	return nil, errors.New("relation does not exist")
}

func reportApp() *fiber.App {
	gen := report.NewGenerator(emptySource{}, report.DefaultLayout()).
		WithCanvas(func(report.Layout) report.Canvas { return report.NewRecorder() })
	h := &Handler{Reports: gen}

	app := fiber.New()
	app.Get("/admin/reports", h.GetReportTypes)
	app.Post("/admin/reports/generate", validate.GenerateReport(), h.GenerateReport)
	return app
}

func TestGenerateReportStreamsDocument(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
	}{
		{"EmptySales", `{"reportType":"sales_grouped","dateFrom":"2026-01-01"}`, report.SalesPlaceholder},
		{"StoreErrorEmbedded", `{"reportType":"invoice_form"}`, report.ErrorLinePrefix + "relation does not exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/reports/generate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := reportApp().Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
			assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), `attachment; filename="Raport_`))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), report.DocumentTitle)
			assert.Contains(t, string(body), tt.wantText)
		})
	}
}

func TestGenerateReportRequiresType(t *testing.T) {
	req := httptest.NewRequest("POST", "/admin/reports/generate", strings.NewReader(`{"dateFrom":"2026-01-01"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := reportApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetReportTypes(t *testing.T) {
	resp, err := reportApp().Test(httptest.NewRequest("GET", "/admin/reports", nil))
	require.NoError(t, err)

	var out struct {
		Data []model.ReportTypeInfo `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Data, 4)
	assert.Equal(t, "sales_grouped", out.Data[0].Type)
	for _, info := range out.Data {
		assert.NotEmpty(t, info.Label)
	}
}

// memStore is a single-seance booking store.
type memStore struct {
	price   *decimal.Decimal
	failRes bool
	tickets int
}

func (s *memStore) InTx(_ context.Context, fn func(tx service.BookingTx) error) error {
	before := s.tickets
	if err := fn(s); err != nil {
		s.tickets = before
		return err
	}
	return nil
}

func (s *memStore) CreateReservation(uint, uint) (uint, error) {
	if s.failRes {
		return 0, errors.New("connection reset")
	}
	return 1, nil
}

func (s *memStore) SeanceBasePrice(uint, bool) (decimal.Decimal, error) {
	if s.price == nil {
		return decimal.Zero, gorm.ErrRecordNotFound
	}
	return *s.price, nil
}

func (s *memStore) TakenSeats(uint, []uint) ([]uint, error) { return nil, nil }

func (s *memStore) CreateTicket(t *model.Ticket) error {
	s.tickets++
	t.ID = uint(s.tickets)
	return nil
}

func bookingApp(store *memStore, user *model.CurrentUser) *fiber.App {
	h := &Handler{Booking: service.NewBookingService(store, false)}
	app := fiber.New()
	app.Use(middleware.Identity(identity.StaticResolver{User: user}))
	app.Post("/book", middleware.RequireUser(), validate.CreateBooking(), h.CreateBooking)
	return app
}

func TestCreateBooking(t *testing.T) {
	price := decimal.RequireFromString("45.50")
	user := &model.CurrentUser{ID: 9, Role: "user"}

	tests := []struct {
		name        string
		store       *memStore
		user        *model.CurrentUser
		form        string
		wantStatus  int
		wantTickets int
		wantMessage string
	}{
		{"Booked", &memStore{price: &price}, user, "seanceId=3&selectedSeats=4,5&selectedSeats=6", fiber.StatusCreated, 3, ""},
		{"NoSeats", &memStore{price: &price}, user, "seanceId=3", fiber.StatusBadRequest, 0, "Booking error: no seats selected"},
		{"MissingSeance", &memStore{}, user, "seanceId=3&selectedSeats=4", fiber.StatusBadRequest, 0, "Booking error: seance not found"},
		{"StoreFailure", &memStore{price: &price, failRes: true}, user, "seanceId=3&selectedSeats=4", fiber.StatusInternalServerError, 0, "Booking error: connection reset"},
		{"Anonymous", &memStore{price: &price}, nil, "seanceId=3&selectedSeats=4", fiber.StatusUnauthorized, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/book", strings.NewReader(tt.form))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			resp, err := bookingApp(tt.store, tt.user).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantTickets, tt.store.tickets)

			var out map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, out["message"])
			}
			if tt.wantStatus == fiber.StatusCreated {
				data := out["data"].(map[string]any)
				assert.Equal(t, "136.5", data["total"])
				assert.Len(t, data["tickets"], 3)
			}
		})
	}
}

func TestDashboardRange(t *testing.T) {
	now := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	q, err := DashboardRange("", "", now)
	require.NoError(t, err)
	assert.Equal(t, model.DashboardQuery{From: "2026-01-01", To: "2026-12-31"}, q)

	q, err = DashboardRange("2026-03-01", "", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", q.From)
	assert.Equal(t, "2026-12-31", q.To)

	_, err = DashboardRange("", "31/12/2026", now)
	assert.Error(t, err)
}

func TestMissingInputIdStopsHandler(t *testing.T) {
	h := &Handler{}
	app := fiber.New()
	app.Get("/spectacle/:id", h.GetSpectacle)
	app.Get("/admin/actors/:id", h.GetActor)
	app.Get("/admin/seances/:id/edit", h.GetSeanceEdit)
	app.Get("/booking/:id", h.GetBookingView)
	app.Post("/admin/spectacles/:id/cast/remove", h.RemoveCast)

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"PublicSpectacle", "GET", "/spectacle/7"},
		{"Actor", "GET", "/admin/actors/7"},
		{"SeanceEdit", "GET", "/admin/seances/7/edit"},
		{"BookingView", "GET", "/booking/7"},
		{"RemoveCast", "POST", "/admin/spectacles/7/cast/remove"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

			var out struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
			assert.Equal(t, constants.ERROR_PARSE_DATA_TO_LOCALS, out.Message)
		})
	}
}
