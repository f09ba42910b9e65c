package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNoSeatsSelected = errors.New("no seats selected")
	ErrSeanceNotFound  = errors.New("seance not found")
	ErrSeatTaken       = errors.New("seat already taken")
)

// BookingTx is the store seen from inside a booking transaction.
type BookingTx interface {
	CreateReservation(userID, seanceID uint) (uint, error)
	SeanceBasePrice(seanceID uint, forUpdate bool) (decimal.Decimal, error)
	TakenSeats(seanceID uint, seatIDs []uint) ([]uint, error)
	CreateTicket(t *model.Ticket) error
}

type BookingStore interface {
	// InTx commits when fn returns nil and rolls back otherwise.
	InTx(ctx context.Context, fn func(tx BookingTx) error) error
}

// BookingNotifier is told about every committed booking.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, res model.BookingResult) error
}

type BookingService struct {
	store     BookingStore
	lockSeats bool
	notifiers []BookingNotifier
	newToken  func() string
}

// NewBookingService creates the booking flow. With lockSeats the seance row
// is locked and seats that already have a ticket are refused.
func NewBookingService(store BookingStore, lockSeats bool, notifiers ...BookingNotifier) *BookingService {
	return &BookingService{
		store:     store,
		lockSeats: lockSeats,
		notifiers: notifiers,
		newToken:  NewTicketToken,
	}
}

// NewTicketToken returns 32 random hex characters.
func NewTicketToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// Book creates a reservation for userID with one ticket per seat, all at the
// seance base price.
func (s *BookingService) Book(ctx context.Context, userID, seanceID uint, seatIDs []uint) (model.BookingResult, error) {
	seats := uniqueSeats(seatIDs)
	result := model.BookingResult{SeanceId: seanceID, Total: decimal.Zero}

	err := s.store.InTx(ctx, func(tx BookingTx) error {
		if len(seats) == 0 {
			return ErrNoSeatsSelected
		}

		var price decimal.Decimal
		if s.lockSeats {
			p, err := seancePrice(tx, seanceID, true)
			if err != nil {
				return err
			}
			taken, err := tx.TakenSeats(seanceID, seats)
			if err != nil {
				return err
			}
			if len(taken) > 0 {
				return fmt.Errorf("%w: %v", ErrSeatTaken, taken)
			}
			price = p
		}

		resID, err := tx.CreateReservation(userID, seanceID)
		if err != nil {
			return err
		}

		if !s.lockSeats {
			if price, err = seancePrice(tx, seanceID, false); err != nil {
				return err
			}
		}

		tickets := make([]model.Ticket, 0, len(seats))
		total := decimal.Zero
		for _, seatID := range seats {
			t := model.Ticket{
				ReservationId: resID,
				SeatId:        seatID,
				FinalPrice:    price,
				TicketToken:   s.newToken(),
			}
			if err := tx.CreateTicket(&t); err != nil {
				return err
			}
			tickets = append(tickets, t)
			total = total.Add(price)
		}

		result.ReservationId = resID
		result.Tickets = tickets
		result.Total = total
		return nil
	})
	if err != nil {
		return model.BookingResult{}, err
	}

	s.notify(ctx, result)
	return result, nil
}

func (s *BookingService) notify(ctx context.Context, res model.BookingResult) {
	for _, n := range s.notifiers {
		if err := n.BookingConfirmed(ctx, res); err != nil {
			utils.Log.WithFields(logrus.Fields{
				"reservationId": res.ReservationId,
				"seanceId":      res.SeanceId,
			}).WithError(err).Warn("booking notification failed")
		}
	}
}

// IsValidationError reports errors caused by the request rather than the store.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoSeatsSelected) || errors.Is(err, ErrSeanceNotFound) || errors.Is(err, ErrSeatTaken)
}

func seancePrice(tx BookingTx, seanceID uint, forUpdate bool) (decimal.Decimal, error) {
	price, err := tx.SeanceBasePrice(seanceID, forUpdate)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return price, ErrSeanceNotFound
	}
	return price, err
}

func uniqueSeats(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
