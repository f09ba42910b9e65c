package main

import (
	"context"
	"os/signal"
	"syscall"

	"teatr_manager/config"
	"teatr_manager/database"
	"teatr_manager/handler"
	"teatr_manager/helper"
	"teatr_manager/identity"
	"teatr_manager/queue"
	"teatr_manager/repository"
	"teatr_manager/router"
	"teatr_manager/service"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	utils.SetLogLevel(config.Config("LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.ConnectDB(); err != nil {
		utils.Log.WithError(err).Fatal("database")
	}
	db := database.DB

	h := handler.New(db)
	h.JWTSecret = []byte(config.Config("JWT_SECRET"))
	h.Posters = helper.NewPosterStore()

	if addr := config.Config("REDIS_ADDR"); addr != "" {
		rdb := helper.NewRedisSeatMap(addr)
		defer rdb.Close()
		h.SeatMap = rdb
	} else {
		h.SeatMap = helper.NewLocalSeatMap()
	}

	bookings := repository.NewBookingRepository(db)
	notifiers := []service.BookingNotifier{
		helper.SeatMapNotifier{Hub: h.SeatMap, Taken: h.Seances.TakenSeatIDs},
	}
	smtp := utils.LoadSMTPSettings()
	if url := config.Config("RABBITMQ_URL"); url != "" {
		pub, err := queue.NewPublisher(url, bookings)
		if err != nil {
			utils.Log.WithError(err).Fatal("rabbitmq")
		}
		defer pub.Close()
		notifiers = append(notifiers, pub)
		go queue.StartConsumer(ctx, url, queue.MailHandler(smtp))
	} else if smtp.Enabled() {
		notifiers = append(notifiers, queue.DirectMailer{
			Lookup: bookings,
			Send:   queue.MailHandler(smtp),
		})
	}
	h.Booking = service.NewBookingService(bookings, config.ConfigBool("BOOKING_LOCK_SEATS", false), notifiers...)

	if expr, err := config.ReportSchedule(); err != nil {
		utils.Log.WithError(err).Error("report schedule disabled")
	} else if smtp.Enabled() && config.Config("REPORT_MAIL_TO") != "" {
		s, err := helper.StartReportScheduler(helper.NewReportMailer(h.Reports), expr)
		if err != nil {
			utils.Log.WithError(err).Error("report schedule disabled")
		} else {
			defer s.Shutdown()
		}
	}

	resolvers := identity.ChainResolver{identity.JWTResolver{Secret: h.JWTSecret}}
	if config.ConfigBool("SESSION_FALLBACK_ADMIN", true) {
		resolvers = append(resolvers, identity.AdminFallbackResolver{Users: h.Users})
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigDefault("CORS_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Content-Disposition",
		MaxAge:           600,
	}))
	router.SetupRoutes(app, h, resolvers)

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	port := config.ConfigDefault("APP_PORT", "8002")
	if err := app.Listen(":" + port); err != nil {
		utils.Log.WithError(err).Fatal("server stopped")
	}
}
