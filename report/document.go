package report

// Document flows text down the page and owns the cursor that absolute
// drawing code reads and moves.
type Document struct {
	canvas Canvas
	layout Layout
	cursor *Cursor
	size   float64
}

func NewDocument(c Canvas, l Layout) *Document {
	return &Document{canvas: c, layout: l, cursor: NewCursor(l), size: 12}
}

func (d *Document) Canvas() Canvas  { return d.canvas }
func (d *Document) Layout() Layout  { return d.layout }
func (d *Document) Cursor() *Cursor { return d.cursor }
func (d *Document) Y() float64      { return d.cursor.Y }

// Write prints a left aligned line at the cursor, starting a new page when
// the line does not fit.
func (d *Document) Write(s string, st TextStyle) {
	d.write(s, st, AlignLeft)
}

func (d *Document) WriteCentered(s string, st TextStyle) {
	d.write(s, st, AlignCenter)
}

func (d *Document) write(s string, st TextStyle, align Align) {
	h := LineHeight(st.Size)
	if NeedsBreak(d.cursor.Y, h, d.cursor.Bottom) {
		d.NewPage()
	}
	d.canvas.Text(d.layout.Margin, d.cursor.Y, 0, s, st, align)
	d.cursor.Advance(h)
	d.size = st.Size
}

// MoveDown skips lines of the last used font size.
func (d *Document) MoveDown(lines float64) {
	d.cursor.Advance(lines * LineHeight(d.size))
}

// LastLineHeight is the step MoveDown(1) takes.
func (d *Document) LastLineHeight() float64 {
	return LineHeight(d.size)
}

// EnsureRoom starts a new page when blockHeight does not fit below the cursor.
func (d *Document) EnsureRoom(blockHeight float64) bool {
	if !NeedsBreak(d.cursor.Y, blockHeight, d.cursor.Bottom) {
		return false
	}
	d.NewPage()
	return true
}

func (d *Document) NewPage() {
	d.canvas.AddPage()
	d.cursor.Reset()
}
