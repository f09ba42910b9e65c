package service

import (
	"context"
	"errors"
	"testing"

	"teatr_manager/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSeance struct {
	price decimal.Decimal
	taken []uint
}

// fakeStore stages writes and only keeps them when the transaction commits.
type fakeStore struct {
	seances      map[uint]fakeSeance
	reservations []model.Reservation
	tickets      []model.Ticket
	lockedRows   int
	failTicket   error

	pendingRes     []model.Reservation
	pendingTickets []model.Ticket
}

func (s *fakeStore) InTx(_ context.Context, fn func(tx BookingTx) error) error {
	s.pendingRes, s.pendingTickets = nil, nil
	if err := fn(s); err != nil {
		return err
	}
	s.reservations = append(s.reservations, s.pendingRes...)
	s.tickets = append(s.tickets, s.pendingTickets...)
	return nil
}

func (s *fakeStore) CreateReservation(userID, seanceID uint) (uint, error) {
	id := uint(len(s.reservations) + len(s.pendingRes) + 1)
	s.pendingRes = append(s.pendingRes, model.Reservation{ID: id, UserId: userID, SeanceId: seanceID})
	return id, nil
}

func (s *fakeStore) SeanceBasePrice(seanceID uint, forUpdate bool) (decimal.Decimal, error) {
	se, ok := s.seances[seanceID]
	if !ok {
		return decimal.Zero, gorm.ErrRecordNotFound
	}
	if forUpdate {
		s.lockedRows++
	}
	return se.price, nil
}

func (s *fakeStore) TakenSeats(seanceID uint, seatIDs []uint) ([]uint, error) {
	var out []uint
	for _, t := range s.seances[seanceID].taken {
		for _, id := range seatIDs {
			if t == id {
				out = append(out, id)
			}
		}
	}
	return out, nil
}

func (s *fakeStore) CreateTicket(t *model.Ticket) error {
	if s.failTicket != nil {
		return s.failTicket
	}
	t.ID = uint(len(s.tickets) + len(s.pendingTickets) + 1)
	s.pendingTickets = append(s.pendingTickets, *t)
	return nil
}

type recordingNotifier struct {
	calls []model.BookingResult
	err   error
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, res model.BookingResult) error {
	n.calls = append(n.calls, res)
	return n.err
}

func newStore() *fakeStore {
	return &fakeStore{seances: map[uint]fakeSeance{
		7: {price: decimal.RequireFromString("45.50"), taken: []uint{3}},
	}}
}

func TestBookCreatesOneTicketPerSeat(t *testing.T) {
	store := newStore()
	notifier := &recordingNotifier{}
	svc := NewBookingService(store, false, notifier)

	res, err := svc.Book(context.Background(), 11, 7, []uint{1, 2, 4})

	require.NoError(t, err)
	require.Len(t, store.reservations, 1)
	assert.Equal(t, uint(11), store.reservations[0].UserId)
	assert.Len(t, store.tickets, 3)

	tokens := map[string]bool{}
	for _, tk := range store.tickets {
		assert.Equal(t, res.ReservationId, tk.ReservationId)
		assert.True(t, decimal.RequireFromString("45.50").Equal(tk.FinalPrice))
		assert.Len(t, tk.TicketToken, 32)
		tokens[tk.TicketToken] = true
	}
	assert.Len(t, tokens, 3)
	assert.Equal(t, "136.50", res.Total.StringFixed(2))
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, res.ReservationId, notifier.calls[0].ReservationId)
}

func TestBookFailures(t *testing.T) {
	tests := []struct {
		name    string
		lock    bool
		seance  uint
		seats   []uint
		ticket  error
		wantErr error
	}{
		{"NoSeats", false, 7, nil, nil, ErrNoSeatsSelected},
		{"OnlyZeroSeat", false, 7, []uint{0}, nil, ErrNoSeatsSelected},
		{"MissingSeance", false, 99, []uint{1}, nil, ErrSeanceNotFound},
		{"MissingSeanceLocked", true, 99, []uint{1}, nil, ErrSeanceNotFound},
		{"SeatTakenLocked", true, 7, []uint{1, 3}, nil, ErrSeatTaken},
		{"TicketInsertFails", false, 7, []uint{1, 2}, errors.New("duplicate key"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			store.failTicket = tt.ticket
			notifier := &recordingNotifier{}
			svc := NewBookingService(store, tt.lock, notifier)

			_, err := svc.Book(context.Background(), 1, tt.seance, tt.seats)

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, IsValidationError(err))
			} else {
				assert.False(t, IsValidationError(err))
			}
			assert.Empty(t, store.reservations)
			assert.Empty(t, store.tickets)
			assert.Empty(t, notifier.calls)
		})
	}
}

func TestBookWithoutLockAllowsTakenSeat(t *testing.T) {
	store := newStore()
	svc := NewBookingService(store, false)

	_, err := svc.Book(context.Background(), 1, 7, []uint{3})

	require.NoError(t, err)
	assert.Zero(t, store.lockedRows)
	assert.Len(t, store.tickets, 1)
}

func TestBookLockedLocksSeanceRow(t *testing.T) {
	store := newStore()
	svc := NewBookingService(store, true)

	res, err := svc.Book(context.Background(), 1, 7, []uint{1, 1, 2})

	require.NoError(t, err)
	assert.Equal(t, 1, store.lockedRows)
	assert.Len(t, res.Tickets, 2)
}

func TestNotifierErrorDoesNotFailBooking(t *testing.T) {
	store := newStore()
	notifier := &recordingNotifier{err: errors.New("broker down")}
	svc := NewBookingService(store, false, notifier)

	_, err := svc.Book(context.Background(), 1, 7, []uint{2})

	assert.NoError(t, err)
	assert.Len(t, notifier.calls, 1)
	assert.Len(t, store.tickets, 1)
}

func TestNewTicketToken(t *testing.T) {
	a, b := NewTicketToken(), NewTicketToken()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
	assert.Regexp(t, "^[0-9a-f]{32}$", a)
}
