package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"teatr_manager/model"
	"teatr_manager/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends booking.confirmed events to a durable queue.
type Publisher struct {
	lookup ConfirmationLookup

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(url string, lookup ConfirmationLookup) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(BookingQueue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	return &Publisher{lookup: lookup, conn: conn, ch: ch}, nil
}

func (p *Publisher) BookingConfirmed(ctx context.Context, res model.BookingResult) error {
	ev, err := BuildEvent(ctx, p.lookup, res, time.Now())
	if err != nil {
		return err
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	err = p.ch.PublishWithContext(ctx, "", BookingQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.ConfirmedAt,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish booking %d: %w", res.ReservationId, err)
	}
	utils.Log.WithField("reservation_id", res.ReservationId).Debug("booking event published")
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

// DirectMailer sends the confirmation mail in the background without a
// broker. It is used when RABBITMQ_URL is not set.
type DirectMailer struct {
	Lookup ConfirmationLookup
	Send   func(ev model.BookingConfirmedEvent) error
}

func (m DirectMailer) BookingConfirmed(ctx context.Context, res model.BookingResult) error {
	ev, err := BuildEvent(ctx, m.Lookup, res, time.Now())
	if err != nil {
		return err
	}
	go func() {
		if err := m.Send(ev); err != nil {
			utils.Log.WithError(err).WithField("reservation_id", ev.ReservationId).Error("confirmation mail failed")
		}
	}()
	return nil
}
