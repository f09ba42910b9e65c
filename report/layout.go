package report

import (
	"os"

	"teatr_manager/config"
	"teatr_manager/utils"
)

// Layout holds page geometry in points and the room a block needs before
// it is moved to a new page.
type Layout struct {
	PageWidth       float64
	PageHeight      float64
	Margin          float64
	PageBottom      float64
	EmployeeMinRoom float64
	InvoiceMinRoom  float64
	FontPath        string
}

// DefaultLayout is a Letter page with 50pt margins.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:       612,
		PageHeight:      792,
		Margin:          50,
		PageBottom:      742,
		EmployeeMinRoom: 62,
		InvoiceMinRoom:  192,
	}
}

func LoadLayout() Layout {
	l := DefaultLayout()
	l.PageBottom = config.ConfigFloat("REPORT_PAGE_BOTTOM", l.PageBottom)
	l.EmployeeMinRoom = config.ConfigFloat("REPORT_EMPLOYEE_MIN_ROOM", l.EmployeeMinRoom)
	l.InvoiceMinRoom = config.ConfigFloat("REPORT_INVOICE_MIN_ROOM", l.InvoiceMinRoom)
	l.FontPath = config.ConfigDefault("REPORT_FONT_PATH", "fonts/Roboto-Regular.ttf")
	if l.PageBottom <= l.Margin || l.PageBottom > l.PageHeight {
		l.PageBottom = DefaultLayout().PageBottom
	}
	if !l.FontAvailable() {
		utils.Log.WithField("path", l.FontPath).Warn("report font not found, falling back to Arial without Polish glyphs")
	}
	return l
}

// FontAvailable reports whether FontPath points at a readable file.
func (l Layout) FontAvailable() bool {
	if l.FontPath == "" {
		return false
	}
	info, err := os.Stat(l.FontPath)
	return err == nil && !info.IsDir()
}

// NeedsBreak reports whether a block of blockHeight starting at y would
// cross pageBottom.
func NeedsBreak(y, blockHeight, pageBottom float64) bool {
	return y+blockHeight > pageBottom
}

// LineHeight is the vertical advance of one line of text at size.
func LineHeight(size float64) float64 {
	return size * 1.15
}

// Cursor is the vertical write position on the current page.
type Cursor struct {
	Y      float64
	Top    float64
	Bottom float64
}

func NewCursor(l Layout) *Cursor {
	return &Cursor{Y: l.Margin, Top: l.Margin, Bottom: l.PageBottom}
}

func (c *Cursor) Advance(dy float64) {
	c.Y += dy
}

func (c *Cursor) MoveTo(y float64) {
	c.Y = y
}

func (c *Cursor) Reset() {
	c.Y = c.Top
}

func (c *Cursor) Remaining() float64 {
	return c.Bottom - c.Y
}
