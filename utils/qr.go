package utils

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/skip2/go-qrcode"
)

const TicketQRSize = 256

// GenerateQRCode returns the PNG bytes of a QR code for content.
func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TicketQRContent is what the entrance scanner reads from a ticket.
func TicketQRContent(reservationId uint, token string) string {
	return fmt.Sprintf("TEATR-TICKET:%d:%s", reservationId, token)
}
