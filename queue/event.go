// Package queue carries booking confirmations from the request path to the
// ticket mailer through RabbitMQ.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"teatr_manager/model"
)

const BookingQueue = "booking.confirmed"

// ConfirmationLookup loads the customer and seance data of a reservation.
type ConfirmationLookup interface {
	Confirmation(ctx context.Context, reservationID uint) (model.BookingConfirmedEvent, error)
}

// BuildEvent completes the looked up reservation with the committed tickets.
func BuildEvent(ctx context.Context, lookup ConfirmationLookup, res model.BookingResult, now time.Time) (model.BookingConfirmedEvent, error) {
	ev, err := lookup.Confirmation(ctx, res.ReservationId)
	if err != nil {
		return model.BookingConfirmedEvent{}, fmt.Errorf("load reservation %d: %w", res.ReservationId, err)
	}
	ev.TicketTokens = make([]string, 0, len(res.Tickets))
	for _, t := range res.Tickets {
		ev.TicketTokens = append(ev.TicketTokens, t.TicketToken)
	}
	ev.Total = res.Total.StringFixed(2)
	ev.ConfirmedAt = now.UTC()
	return ev, nil
}

func decodeEvent(body []byte) (model.BookingConfirmedEvent, error) {
	var ev model.BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return ev, fmt.Errorf("unmarshal: %w", err)
	}
	if ev.ReservationId == 0 {
		return ev, fmt.Errorf("event without reservation id")
	}
	return ev, nil
}
