package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Hall struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (Hall) TableName() string { return "halls" }

type Seat struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	HallId uint `json:"hallId"`
	GridX  int  `json:"gridX"`
	GridY  int  `json:"gridY"`
}

func (Seat) TableName() string { return "seats" }

type Seance struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	SpectacleId uint            `json:"spectacleId"`
	HallId      uint            `json:"hallId"`
	StartTime   time.Time       `json:"startTime"`
	BasePrice   decimal.Decimal `json:"basePrice"`
}

func (Seance) TableName() string { return "seances" }

// FormattedTime is the value a datetime-local input expects.
func (s Seance) FormattedTime() string {
	return s.StartTime.Format("2006-01-02T15:04")
}

type SeanceWithHall struct {
	Seance
	HallName string `json:"hallName"`
}

// SeanceOverview is one line of the admin seance table.
type SeanceOverview struct {
	ID        uint            `json:"id"`
	Title     string          `json:"title"`
	StartTime time.Time       `json:"startTime"`
	BasePrice decimal.Decimal `json:"basePrice"`
	Hall      string          `json:"hall"`
}

type SeanceInput struct {
	SpectacleId uint            `json:"spectacle_id" form:"spectacle_id" validate:"required"`
	HallId      uint            `json:"hall_id" form:"hall_id" validate:"required"`
	StartTime   string          `json:"start_time" form:"start_time"`
	Price       decimal.Decimal `json:"price" form:"-"`
}

type SeanceFormData struct {
	Spectacles []Spectacle `json:"spectacles"`
	Halls      []Hall      `json:"halls"`
}

type SeanceEditView struct {
	Seance        Seance      `json:"seance"`
	FormattedTime string      `json:"formattedTime"`
	Spectacles    []Spectacle `json:"spectacles"`
	Halls         []Hall      `json:"halls"`
}
