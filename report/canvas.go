package report

import "io"

type Color struct {
	R, G, B int
}

var (
	Black     = Color{0, 0, 0}
	White     = Color{255, 255, 255}
	Gray      = Color{128, 128, 128}
	Blue      = Color{0, 0, 255}
	Red       = Color{255, 0, 0}
	DarkGray  = Color{51, 51, 51}
	MidGray   = Color{85, 85, 85}
	BandGray  = Color{224, 224, 224}
	ChartBg   = Color{252, 252, 252}
	ShadowBar = Color{221, 221, 221}
	BarBlue   = Color{41, 128, 185}
	FieldFill = Color{249, 249, 249}
	EventFill = Color{232, 244, 248}
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type TextStyle struct {
	Size      float64
	Color     Color
	Bold      bool
	Underline bool
}

// RectStyle draws the fill, the border or both. A nil color skips that part.
type RectStyle struct {
	Fill      *Color
	Stroke    *Color
	LineWidth float64
}

func filled(c Color) RectStyle {
	return RectStyle{Fill: &c}
}

func stroked(c Color, lineWidth float64) RectStyle {
	return RectStyle{Stroke: &c, LineWidth: lineWidth}
}

func filledStroked(fill, stroke Color) RectStyle {
	return RectStyle{Fill: &fill, Stroke: &stroke, LineWidth: 1}
}

// Canvas is the set of drawing primitives the reports use. Coordinates are
// points from the top left corner of the current page.
type Canvas interface {
	// Text draws one line with its top at y. A zero width runs to the right margin.
	Text(x, y, width float64, s string, st TextStyle, align Align)
	Rect(x, y, w, h float64, st RectStyle)
	Line(x1, y1, x2, y2 float64, c Color, lineWidth float64)
	Circle(x, y, r float64, fill Color)
	AddPage()
	PageCount() int
	Finish(w io.Writer) error
}
