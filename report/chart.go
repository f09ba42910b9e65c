package report

import (
	"context"
	"fmt"
	"math"

	"teatr_manager/model"

	"github.com/shopspring/decimal"
)

const (
	chartHeading     = "Financial chart (top spectacles)"
	ChartPlaceholder = "No financial data for the given criteria."

	// AxisFallback is the axis maximum used when there is nothing to scale to.
	AxisFallback = 1000.0

	chartX        = 100
	chartWidth    = 400
	chartHeight   = 300
	chartGapAbove = 20
	gridSteps     = 5
	barWidth      = 40
	shadowOffset  = 3
	titleMaxRunes = 12
	titleKeep     = 10
)

var (
	axisHeadroom   = decimal.RequireFromString("1.1")
	chartHeadStyle = TextStyle{Size: 16, Color: Black, Underline: true}
	axisStyle      = TextStyle{Size: 9, Color: MidGray}
	valueStyle     = TextStyle{Size: 10, Color: Black}
	barTitleStyle  = TextStyle{Size: 9, Color: DarkGray}
	chartSumStyle  = TextStyle{Size: 12, Color: Black, Bold: true}
)

// AxisMax is 1.1 times the largest total, or AxisFallback when that is not
// positive.
func AxisMax(rows []model.ChartRow) float64 {
	largest := decimal.Zero
	for _, r := range rows {
		if r.Total.GreaterThan(largest) {
			largest = r.Total
		}
	}
	v := largest.Mul(axisHeadroom).InexactFloat64()
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return AxisFallback
	}
	return v
}

// TruncateTitle shortens titles longer than 12 characters to 10 plus "...".
func TruncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= titleMaxRunes {
		return title
	}
	return string(r[:titleKeep]) + "..."
}

// AxisLabel labels gridline step (0 at the base line, gridSteps at the top).
func AxisLabel(axis float64, step int) string {
	return fmt.Sprintf("%d PLN", int64(math.Round(axis/gridSteps*float64(step))))
}

func (g *Generator) renderChart(ctx context.Context, doc *Document, f Filter) (Summary, error) {
	doc.WriteCentered(chartHeading, chartHeadStyle)
	doc.MoveDown(2)

	rows, err := g.source.TopSpectacles(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	if len(rows) == 0 {
		doc.Write(ChartPlaceholder, bodyStyle)
		return Summary{Total: decimal.Zero}, nil
	}

	doc.EnsureRoom(chartGapAbove + chartHeight + 70)
	c := doc.Canvas()
	top := doc.Y() + chartGapAbove
	bottom := top + chartHeight
	axis := AxisMax(rows)

	c.Rect(chartX, top, chartWidth, chartHeight, filled(ChartBg))
	for i := 0; i <= gridSteps; i++ {
		y := bottom - chartHeight/gridSteps*float64(i)
		c.Line(chartX, y, chartX+chartWidth, y, BandGray, 0.5)
		c.Text(chartX-60, y-3, 50, AxisLabel(axis, i), axisStyle, AlignRight)
	}

	gap := (chartWidth - float64(len(rows))*barWidth) / float64(len(rows)+1)
	total := decimal.Zero
	for i, r := range rows {
		total = total.Add(r.Total)
		val := r.Total.InexactFloat64()
		h := val / axis * chartHeight
		x := chartX + gap + float64(i)*(barWidth+gap)
		y := bottom - h

		c.Rect(x+shadowOffset, y+shadowOffset, barWidth, h, filled(ShadowBar))
		c.Rect(x, y, barWidth, h, filled(BarBlue))
		c.Text(x-5, y-15, barWidth+10, fmt.Sprintf("%.0f", val), valueStyle, AlignCenter)
		c.Text(x-10, bottom+10, barWidth+20, TruncateTitle(r.Title), barTitleStyle, AlignCenter)
	}
	c.Rect(chartX, top, chartWidth, chartHeight, stroked(DarkGray, 1))

	doc.Cursor().MoveTo(bottom + 40)
	doc.Write(fmt.Sprintf("TOTAL OF SHOWN SPECTACLES: %s PLN", total.StringFixed(2)), chartSumStyle)
	return Summary{Rows: len(rows), Total: total}, nil
}
