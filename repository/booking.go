package repository

import (
	"context"
	"time"

	"teatr_manager/model"
	"teatr_manager/service"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// InTx runs fn inside one database transaction, rolled back when fn fails.
func (r *BookingRepository) InTx(ctx context.Context, fn func(tx service.BookingTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&bookingTx{tx: tx})
	})
}

type bookingTx struct {
	tx *gorm.DB
}

func (b *bookingTx) CreateReservation(userID, seanceID uint) (uint, error) {
	var row struct{ ID uint }
	err := b.tx.Raw("INSERT INTO reservations (user_id, seance_id) VALUES (?, ?) RETURNING id", userID, seanceID).Scan(&row).Error
	return row.ID, err
}

func (b *bookingTx) SeanceBasePrice(seanceID uint, forUpdate bool) (decimal.Decimal, error) {
	q := "SELECT base_price FROM seances WHERE id = ?"
	if forUpdate {
		q += " FOR UPDATE"
	}
	var row struct{ BasePrice decimal.Decimal }
	err := notFound(b.tx.Raw(q, seanceID).Scan(&row))
	return row.BasePrice, err
}

func (b *bookingTx) TakenSeats(seanceID uint, seatIDs []uint) ([]uint, error) {
	var rows []struct{ SeatId uint }
	err := b.tx.Raw(`SELECT t.seat_id
		FROM tickets t JOIN reservations r ON t.reservation_id = r.id
		WHERE r.seance_id = ? AND t.seat_id IN ?`, seanceID, seatIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	taken := make([]uint, 0, len(rows))
	for _, row := range rows {
		taken = append(taken, row.SeatId)
	}
	return taken, nil
}

func (b *bookingTx) CreateTicket(t *model.Ticket) error {
	return b.tx.Exec("INSERT INTO tickets (reservation_id, seat_id, final_price, ticket_token) VALUES (?, ?, ?, ?)",
		t.ReservationId, t.SeatId, t.FinalPrice, t.TicketToken).Error
}

// Confirmation loads what the confirmation mail needs about a reservation.
func (r *BookingRepository) Confirmation(ctx context.Context, reservationID uint) (model.BookingConfirmedEvent, error) {
	var row struct {
		UserId    uint
		SeanceId  uint
		FirstName string
		LastName  string
		Email     *string
		Title     string
		StartTime time.Time
	}
	res := r.db.WithContext(ctx).Raw(`SELECT r.user_id, r.seance_id, p.first_name, p.last_name, p.email, s.title, se.start_time
		FROM reservations r
		JOIN persons p ON r.user_id = p.id
		JOIN seances se ON r.seance_id = se.id
		JOIN spectacles s ON se.spectacle_id = s.id
		WHERE r.id = ?`, reservationID).Scan(&row)
	if err := notFound(res); err != nil {
		return model.BookingConfirmedEvent{}, err
	}

	ev := model.BookingConfirmedEvent{
		ReservationId: reservationID,
		UserId:        row.UserId,
		SeanceId:      row.SeanceId,
		CustomerName:  row.FirstName + " " + row.LastName,
		Title:         row.Title,
		StartTime:     row.StartTime,
	}
	if row.Email != nil {
		ev.Email = *row.Email
	}
	return ev, nil
}
