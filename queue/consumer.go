package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"teatr_manager/model"
	"teatr_manager/utils"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handler processes one confirmed booking.
type Handler func(ev model.BookingConfirmedEvent) error

// StartConsumer consumes booking.confirmed until ctx is cancelled,
// reconnecting with a capped backoff when the broker goes away.
func StartConsumer(ctx context.Context, url string, handle Handler) {
	backoff := time.Second
	for ctx.Err() == nil {
		conn, err := amqp.Dial(url)
		if err != nil {
			utils.Log.WithError(err).Warnf("booking consumer: dial failed, retrying in %s", backoff)
			if !sleep(ctx, backoff) {
				return
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, handle)
		_ = conn.Close()
		if err != nil && ctx.Err() == nil {
			utils.Log.WithError(err).Warn("booking consumer: reconnecting")
			if !sleep(ctx, 2*time.Second) {
				return
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, handle Handler) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(20, 0, false); err != nil {
		utils.Log.WithError(err).Warn("booking consumer: set QoS failed")
	}
	if _, err := ch.QueueDeclare(BookingQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.Consume(BookingQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			if err := handleDelivery(d.Body, handle); err != nil {
				utils.Log.WithError(err).Error("booking consumer: message rejected")
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

func handleDelivery(body []byte, handle Handler) error {
	ev, err := decodeEvent(body)
	if err != nil {
		return err
	}
	if err := handle(ev); err != nil {
		return fmt.Errorf("reservation %d: %w", ev.ReservationId, err)
	}
	return nil
}

// MailHandler sends the ticket mail. Reservations without an email address
// are acknowledged and skipped.
func MailHandler(smtp utils.SMTPSettings) Handler {
	return func(ev model.BookingConfirmedEvent) error {
		if ev.Email == "" {
			utils.Log.WithField("reservation_id", ev.ReservationId).Info("no email on reservation, skipping mail")
			return nil
		}
		return utils.SendBookingConfirmation(smtp, ev)
	}
}
