package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLookup struct {
	ev  model.BookingConfirmedEvent
	err error
}

func (f fakeLookup) Confirmation(_ context.Context, id uint) (model.BookingConfirmedEvent, error) {
	f.ev.ReservationId = id
	return f.ev, f.err
}

var committed = model.BookingResult{
	ReservationId: 12,
	SeanceId:      3,
	Tickets: []model.Ticket{
		{SeatId: 1, TicketToken: "aa"},
		{SeatId: 2, TicketToken: "bb"},
	},
	Total: decimal.RequireFromString("90"),
}

func TestBuildEvent(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	lookup := fakeLookup{ev: model.BookingConfirmedEvent{Email: "jan@x.pl", Title: "Hamlet"}}

	ev, err := BuildEvent(context.Background(), lookup, committed, now)
	require.NoError(t, err)
	assert.Equal(t, uint(12), ev.ReservationId)
	assert.Equal(t, []string{"aa", "bb"}, ev.TicketTokens)
	assert.Equal(t, "90.00", ev.Total)
	assert.Equal(t, now, ev.ConfirmedAt)

	_, err = BuildEvent(context.Background(), fakeLookup{err: errors.New("gone")}, committed, now)
	assert.ErrorContains(t, err, "load reservation 12")
}

func TestHandleDelivery(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		handleErr error
		wantErr   bool
		wantCall  bool
	}{
		{"Valid", `{"reservation_id":5,"email":"a@b.pl","ticket_tokens":["x"]}`, nil, false, true},
		{"Malformed", `{"reservation_id":`, nil, true, false},
		{"MissingReservation", `{"email":"a@b.pl"}`, nil, true, false},
		{"HandlerFails", `{"reservation_id":5}`, errors.New("smtp down"), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			err := handleDelivery([]byte(tt.body), func(ev model.BookingConfirmedEvent) error {
				called = true
				assert.Equal(t, uint(5), ev.ReservationId)
				return tt.handleErr
			})
			assert.Equal(t, tt.wantErr, err != nil)
			assert.Equal(t, tt.wantCall, called)
		})
	}
}

func TestMailHandlerSkipsMissingEmail(t *testing.T) {
	assert.NoError(t, MailHandler(utils.SMTPSettings{})(model.BookingConfirmedEvent{ReservationId: 1}))
}

func TestDirectMailer(t *testing.T) {
	sent := make(chan model.BookingConfirmedEvent, 1)
	m := DirectMailer{
		Lookup: fakeLookup{ev: model.BookingConfirmedEvent{Email: "jan@x.pl"}},
		Send: func(ev model.BookingConfirmedEvent) error {
			sent <- ev
			return nil
		},
	}
	require.NoError(t, m.BookingConfirmed(context.Background(), committed))

	select {
	case ev := <-sent:
		assert.Equal(t, "jan@x.pl", ev.Email)
		assert.Len(t, ev.TicketTokens, 2)
	case <-time.After(time.Second):
		t.Fatal("mail not sent")
	}

	m.Lookup = fakeLookup{err: errors.New("gone")}
	assert.Error(t, m.BookingConfirmed(context.Background(), committed))
}
