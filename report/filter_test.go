package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewFilter(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		min      string
		wantFrom string
		wantTo   string
		wantMin  float64
	}{
		{"OpenRange", "", "", "", "1970-01-01", "2100-12-31 23:59:59", 0},
		{"ClosedRange", "2024-01-01", "2024-12-31", "50", "2024-01-01", "2024-12-31 23:59:59", 50},
		{"CommaDecimal", "", "", "12,5", "1970-01-01", "2100-12-31 23:59:59", 12.5},
		{"GarbageAmount", "", "", "abc", "1970-01-01", "2100-12-31 23:59:59", 0},
		{"NaNAmount", "", "", "NaN", "1970-01-01", "2100-12-31 23:59:59", 0},
		{"Whitespace", " 2024-03-01 ", "  ", " 7 ", "2024-03-01", "2100-12-31 23:59:59", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter("sales_grouped", tt.from, tt.to, tt.min)
			assert.Equal(t, tt.wantFrom, f.DateFrom)
			assert.Equal(t, tt.wantTo, f.DateTo)
			assert.Equal(t, tt.wantMin, f.MinAmount)
		})
	}
}

func TestFilterLabels(t *testing.T) {
	f := NewFilter("invoice_form", "", "2024-06-30", "20.5")

	assert.Equal(t, "Criteria: From 1970-01-01 | To 2024-06-30 | Min. amount: 20.5 PLN", f.CriteriaLine())
	assert.Equal(t, "Raport_invoice_form_1700000000000.pdf", f.FileName(time.UnixMilli(1700000000000)))
}

func TestFilterFileNameSanitized(t *testing.T) {
	tests := []struct {
		name       string
		reportType string
		want       string
	}{
		{"Plain", "employee_list", "Raport_employee_list_1.pdf"},
		{"QuoteAndSpace", `x"; filename=evil.exe`, "Raport_x___filename_evil_exe_1.pdf"},
		{"HeaderBreak", "a\r\nSet-Cookie: b", "Raport_a__Set-Cookie__b_1.pdf"},
		{"NonAscii", "raport_ż", "Raport_raport___1.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFilter(tt.reportType, "", "", "")
			assert.Equal(t, tt.want, f.FileName(time.UnixMilli(1)))
		})
	}
}
