package router

import (
	"teatr_manager/handler"
	"teatr_manager/identity"
	"teatr_manager/middleware"
	"teatr_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, resolver identity.Resolver) {
	app.Use(logger.New())
	app.Use(middleware.Identity(resolver))

	auth := app.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/logout", h.Logout)
	auth.Get("/me", h.GetMe)

	app.Get("/", h.GetHome)
	app.Get("/spectacle/:id", validate.GetById("id"), h.GetSpectacle)
	app.Post("/spectacle/:id/review", middleware.RequireUser(), validate.GetById("id"), validate.CreateReview(), h.CreateReview)

	book := app.Group("/book")
	book.Get("/:seanceId/ws", middleware.WebSocketUpgrade(), validate.GetById("seanceId"), websocket.New(h.SeatMapSocket))
	book.Get("/:seanceId", validate.GetById("seanceId"), h.GetBookingView)
	book.Post("/", middleware.RequireUser(), validate.CreateBooking(), h.CreateBooking)

	admin := app.Group("/admin", middleware.RequireAdmin())
	admin.Get("/", h.GetAdminDashboard)
	admin.Get("/stats", h.GetAdminStats)
	admin.Post("/update-prices", validate.UpdatePrices(), h.UpdatePrices)

	reports := admin.Group("/reports")
	reports.Get("/", h.GetReportTypes)
	reports.Post("/generate", validate.GenerateReport(), h.GenerateReport)

	spectacle := admin.Group("/spectacle")
	spectacle.Get("/new", h.GetSpectacleForm)
	spectacle.Post("/", validate.SpectacleForm(), h.CreateSpectacle)
	spectacle.Get("/edit/:id", validate.GetById("id"), h.GetSpectacleEdit)
	spectacle.Post("/edit/:id", validate.GetById("id"), validate.SpectacleForm(), h.UpdateSpectacle)
	spectacle.Post("/:id/add-actor", validate.GetById("id"), validate.CastForm(), h.AddCast)
	spectacle.Post("/:id/remove-actor", validate.GetById("id"), validate.CastForm(), h.RemoveCast)

	seance := admin.Group("/seance")
	seance.Get("/new", h.GetSeanceForm)
	seance.Post("/", validate.SeanceForm(), h.CreateSeance)
	seance.Get("/edit/:id", validate.GetById("id"), h.GetSeanceEdit)
	seance.Post("/edit/:id", validate.GetById("id"), validate.SeanceForm(), h.UpdateSeance)

	actors := admin.Group("/actors")
	actors.Get("/", h.GetActors)
	actors.Post("/", validate.ActorForm(), h.CreateActor)
	actors.Get("/edit/:id", validate.GetById("id"), h.GetActor)
	actors.Post("/edit/:id", validate.GetById("id"), validate.ActorForm(), h.UpdateActor)

	app.Static("/", "./public")
}
