package utils

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"teatr_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUintList(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    []uint
		wantErr bool
	}{
		{"Repeated", []string{"1", "2"}, []uint{1, 2}, false},
		{"CommaSeparated", []string{"3, 4,,5"}, []uint{3, 4, 5}, false},
		{"Empty", nil, nil, false},
		{"NotNumber", []string{"1", "x"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseUintList(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNumbers(t *testing.T) {
	assert.Equal(t, 12.5, ParseLooseFloat("12,5", 0))
	assert.Equal(t, 0.0, ParseLooseFloat("abc", 0))
	assert.Equal(t, 7.0, ParseLooseFloat("NaN", 7))
	assert.Equal(t, "100", FormatAmount(100))
	assert.Equal(t, "0.5", FormatAmount(0.5))

	d, err := ParseDecimal(" 45,50 ")
	require.NoError(t, err)
	assert.Equal(t, "45.5", d.String())

	d, err = ParseDecimal("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDecimal("forty")
	assert.Error(t, err)
}

func TestIsValidValueOfConstant(t *testing.T) {
	allowed := []string{"sales_grouped", "invoice_form"}
	assert.True(t, IsValidValueOfConstant("invoice_form", allowed))
	assert.False(t, IsValidValueOfConstant("Invoice_Form", allowed))
}

func TestTicketQRCode(t *testing.T) {
	content := TicketQRContent(12, "abc")
	assert.Equal(t, "TEATR-TICKET:12:abc", content)

	data, err := GenerateQRCode(content, TicketQRSize)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, TicketQRSize, img.Bounds().Dx())
}

func TestBookingConfirmationText(t *testing.T) {
	ev := model.BookingConfirmedEvent{
		ReservationId: 12,
		CustomerName:  "Jan Kowalski",
		Title:         "Hamlet",
		StartTime:     time.Date(2026, 11, 2, 19, 0, 0, 0, time.UTC),
		TicketTokens:  []string{"a", "b"},
		Total:         "90.00",
	}
	text := BookingConfirmationText(ev)
	assert.Contains(t, text, "Hello Jan Kowalski")
	assert.Contains(t, text, `#12 for "Hamlet" on 2026-11-02 19:00`)
	assert.Contains(t, text, "Tickets: 2, total: 90.00 PLN.")
}

func TestSendWithoutSMTP(t *testing.T) {
	assert.Error(t, SendBookingConfirmation(SMTPSettings{}, model.BookingConfirmedEvent{Email: "a@b.pl"}))
	assert.Error(t, SendReportEmail(SMTPSettings{}, []string{"a@b.pl"}, "s", "b", "r.pdf", nil))
}
