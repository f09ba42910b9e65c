package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reservation struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserId          uint      `json:"userId"`
	SeanceId        uint      `json:"seanceId"`
	ReservationDate time.Time `json:"reservationDate"`
}

func (Reservation) TableName() string { return "reservations" }

type Ticket struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ReservationId uint            `json:"reservationId"`
	SeatId        uint            `json:"seatId"`
	FinalPrice    decimal.Decimal `json:"finalPrice"`
	TicketToken   string          `json:"ticketToken"`
}

func (Ticket) TableName() string { return "tickets" }

type BookingInput struct {
	SeanceId      uint   `json:"seanceId" form:"seanceId" validate:"required"`
	SelectedSeats []uint `json:"selectedSeats" form:"selectedSeats"`
}

// BookingResult describes a committed booking.
type BookingResult struct {
	ReservationId uint            `json:"reservationId"`
	SeanceId      uint            `json:"seanceId"`
	Tickets       []Ticket        `json:"tickets"`
	Total         decimal.Decimal `json:"total"`
}

// BookingDetail is the seance header of the booking page.
type BookingDetail struct {
	Seance
	Title    string `json:"title"`
	HallName string `json:"hallName"`
}

type BookingView struct {
	Seance    BookingDetail `json:"seance"`
	Seats     []Seat        `json:"seats"`
	BookedIds []uint        `json:"bookedIds"`
}

// BookingConfirmedEvent is published after a booking commits.
type BookingConfirmedEvent struct {
	ReservationId uint      `json:"reservation_id"`
	UserId        uint      `json:"user_id"`
	SeanceId      uint      `json:"seance_id"`
	Email         string    `json:"email"`
	CustomerName  string    `json:"customer_name"`
	Title         string    `json:"title"`
	StartTime     time.Time `json:"start_time"`
	TicketTokens  []string  `json:"ticket_tokens"`
	Total         string    `json:"total"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
}
