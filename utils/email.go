package utils

import (
	"bytes"
	"fmt"
	"io"
	"net/smtp"
	"strings"

	"teatr_manager/config"
	"teatr_manager/model"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

type SMTPSettings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func LoadSMTPSettings() SMTPSettings {
	return SMTPSettings{
		Host:     config.Config("SMTP_HOST"),
		Port:     config.ConfigInt("SMTP_PORT", 587),
		Username: config.Config("SMTP_USERNAME"),
		Password: config.Config("SMTP_PASSWORD"),
		From:     config.ConfigDefault("SMTP_FROM", config.Config("SMTP_USERNAME")),
	}
}

func (s SMTPSettings) Enabled() bool {
	return s.Host != "" && s.From != ""
}

// SendReportEmail mails a generated PDF report as an attachment.
func SendReportEmail(s SMTPSettings, to []string, subject, body, filename string, pdf []byte) error {
	if !s.Enabled() {
		return fmt.Errorf("smtp is not configured")
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}), gomail.SetHeader(map[string][]string{
		"Content-Type": {"application/pdf"},
	}))

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send report mail: %w", err)
	}
	return nil
}

// SendBookingConfirmation mails the customer one QR code per ticket.
func SendBookingConfirmation(s SMTPSettings, ev model.BookingConfirmedEvent) error {
	if !s.Enabled() {
		return fmt.Errorf("smtp is not configured")
	}
	if ev.Email == "" {
		return fmt.Errorf("reservation %d has no customer e-mail", ev.ReservationId)
	}

	e := email.NewEmail()
	e.From = s.From
	e.To = []string{ev.Email}
	e.Subject = fmt.Sprintf("Reservation #%d confirmed", ev.ReservationId)
	e.Text = []byte(BookingConfirmationText(ev))

	for i, token := range ev.TicketTokens {
		png, err := GenerateQRCode(TicketQRContent(ev.ReservationId, token), TicketQRSize)
		if err != nil {
			return fmt.Errorf("ticket qr: %w", err)
		}
		name := fmt.Sprintf("ticket-%d-%d.png", ev.ReservationId, i+1)
		if _, err := e.Attach(bytes.NewReader(png), name, "image/png"); err != nil {
			return fmt.Errorf("attach %s: %w", name, err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}
	return nil
}

func BookingConfirmationText(ev model.BookingConfirmedEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", ev.CustomerName)
	fmt.Fprintf(&b, "your reservation #%d for \"%s\" on %s is confirmed.\n",
		ev.ReservationId, ev.Title, ev.StartTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Tickets: %d, total: %s PLN.\n\n", len(ev.TicketTokens), ev.Total)
	b.WriteString("Show the attached QR codes at the entrance.\n")
	return b.String()
}
