package report

import (
	"io"
	"strings"
)

type OpKind string

const (
	OpText   OpKind = "text"
	OpRect   OpKind = "rect"
	OpLine   OpKind = "line"
	OpCircle OpKind = "circle"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	Page  int
	X, Y  float64
	W, H  float64
	Text  string
	Style TextStyle
	Rect  RectStyle
	Color Color
}

// Recorder is an in-memory Canvas. Finish writes the recorded text lines.
type Recorder struct {
	Ops  []Op
	page int
}

func NewRecorder() *Recorder {
	return &Recorder{page: 1}
}

func (r *Recorder) Text(x, y, width float64, s string, st TextStyle, _ Align) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Page: r.page, X: x, Y: y, W: width, Text: s, Style: st, Color: st.Color})
}

func (r *Recorder) Rect(x, y, w, h float64, st RectStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Page: r.page, X: x, Y: y, W: w, H: h, Rect: st})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c Color, _ float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Page: r.page, X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: c})
}

func (r *Recorder) Circle(x, y, radius float64, fill Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Page: r.page, X: x, Y: y, W: radius, Color: fill})
}

func (r *Recorder) AddPage() {
	r.page++
}

func (r *Recorder) PageCount() int {
	return r.page
}

func (r *Recorder) Finish(w io.Writer) error {
	_, err := io.WriteString(w, strings.Join(r.Texts(), "\n"))
	return err
}

func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// CountPrefix counts text lines starting with prefix.
func (r *Recorder) CountPrefix(prefix string) int {
	n := 0
	for _, t := range r.Texts() {
		if strings.HasPrefix(t, prefix) {
			n++
		}
	}
	return n
}

func (r *Recorder) Find(text string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == text {
			return op, true
		}
	}
	return Op{}, false
}

func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
