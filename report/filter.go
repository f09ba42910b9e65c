package report

import (
	"fmt"
	"strings"
	"time"

	"teatr_manager/utils"
)

const (
	openRangeStart = "1970-01-01"
	openRangeEnd   = "2100-12-31 23:59:59"
	endOfDay       = " 23:59:59"
)

// Filter is a normalized report request. DateFrom and DateTo are passed to
// the store as inclusive timestamp bounds.
type Filter struct {
	ReportType string
	DateFrom   string
	DateTo     string
	MinAmount  float64
}

func NewFilter(reportType, dateFrom, dateTo, minAmount string) Filter {
	f := Filter{
		ReportType: strings.TrimSpace(reportType),
		DateFrom:   openRangeStart,
		DateTo:     openRangeEnd,
		MinAmount:  utils.ParseLooseFloat(minAmount, 0),
	}
	if v := strings.TrimSpace(dateFrom); v != "" {
		f.DateFrom = v
	}
	if v := strings.TrimSpace(dateTo); v != "" {
		f.DateTo = v + endOfDay
	}
	return f
}

func (f Filter) FromDay() string {
	return strings.SplitN(f.DateFrom, " ", 2)[0]
}

func (f Filter) ToDay() string {
	return strings.SplitN(f.DateTo, " ", 2)[0]
}

func (f Filter) CriteriaLine() string {
	return fmt.Sprintf("Criteria: From %s | To %s | Min. amount: %s PLN",
		f.FromDay(), f.ToDay(), utils.FormatAmount(f.MinAmount))
}

// FileName is the attachment name announced before generation starts.
func (f Filter) FileName(now time.Time) string {
	return fmt.Sprintf("Raport_%s_%d.pdf", fileSafe(f.ReportType), now.UnixMilli())
}

// fileSafe keeps letters, digits, '_' and '-' so the name can sit inside a
// quoted Content-Disposition value.
func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, s)
}
