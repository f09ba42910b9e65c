package report

import (
	"testing"

	"teatr_manager/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func chartRows(totals ...int64) []model.ChartRow {
	var rows []model.ChartRow
	for _, t := range totals {
		rows = append(rows, model.ChartRow{Title: "S", Total: decimal.NewFromInt(t)})
	}
	return rows
}

func TestAxisMax(t *testing.T) {
	tests := []struct {
		name string
		rows []model.ChartRow
		want float64
	}{
		{"LargestTimesHeadroom", chartRows(200, 100, 50), 220},
		{"Empty", nil, AxisFallback},
		{"AllZero", chartRows(0, 0), AxisFallback},
		{"Single", chartRows(10), 11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AxisMax(tt.rows), 1e-9)
		})
	}
}

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, "0 PLN", AxisLabel(220, 0))
	assert.Equal(t, "44 PLN", AxisLabel(220, 1))
	assert.Equal(t, "220 PLN", AxisLabel(220, 5))
	assert.Equal(t, "600 PLN", AxisLabel(AxisFallback, 3))
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hamlet", "Hamlet"},
		{"TwelveChars!", "TwelveChars!"},
		{"Thirteen char", "Thirteen c..."},
		{"Wesele w Krakowie", "Wesele w K..."},
		{"Żółć żółć żółć", "Żółć żółć ..."},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateTitle(tt.in))
		})
	}
}
