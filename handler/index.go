package handler

import (
	"errors"

	"teatr_manager/constants"
	"teatr_manager/helper"
	"teatr_manager/report"
	"teatr_manager/repository"
	"teatr_manager/service"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handler holds the stores and services the HTTP routes work with.
type Handler struct {
	Spectacles *repository.SpectacleRepository
	Seances    *repository.SeanceRepository
	Actors     *repository.ActorRepository
	Users      *repository.UserRepository
	Stats      *repository.StatsRepository
	Dashboards *repository.DashboardRepository
	Reports    *report.Generator
	Booking    *service.BookingService
	Posters    helper.PosterStore
	SeatMap    helper.SeatMapHub
	JWTSecret  []byte
}

func New(db *gorm.DB) *Handler {
	return &Handler{
		Spectacles: repository.NewSpectacleRepository(db),
		Seances:    repository.NewSeanceRepository(db),
		Actors:     repository.NewActorRepository(db),
		Users:      repository.NewUserRepository(db),
		Stats:      repository.NewStatsRepository(db),
		Dashboards: repository.NewDashboardRepository(db),
		Reports:    report.NewGenerator(repository.NewReportRepository(db), report.LoadLayout()),
	}
}

// inputId reads the id stored by validate.GetById.
func inputId(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("inputId").(uint)
	return id, ok && id != 0
}

func localsError(c *fiber.Ctx, key string) error {
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing "+key))
}

// storeError maps a missing row to 404 and everything else to 500.
func storeError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFoundMsg, err)
	}
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_SQL, err)
}
