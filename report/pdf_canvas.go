package report

import (
	"io"

	"github.com/jung-kurt/gofpdf"
)

const utf8Family = "report"

// PDFCanvas draws on a gofpdf document.
type PDFCanvas struct {
	pdf       *gofpdf.Fpdf
	family    string
	translate func(string) string
}

// NewPDFCanvas opens a document with its first page. The font at
// l.FontPath is embedded when present, otherwise the core Arial font is
// used with a cp1252 translation.
func NewPDFCanvas(l Layout) *PDFCanvas {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(l.Margin, l.Margin, l.Margin)
	pdf.SetAutoPageBreak(false, 0)

	c := &PDFCanvas{pdf: pdf, family: "Arial", translate: pdf.UnicodeTranslatorFromDescriptor("")}
	if l.FontAvailable() {
		pdf.AddUTF8Font(utf8Family, "", l.FontPath)
		pdf.AddUTF8Font(utf8Family, "B", l.FontPath)
		c.family = utf8Family
		c.translate = func(s string) string { return s }
	}
	pdf.AddPage()
	return c
}

func (c *PDFCanvas) Text(x, y, width float64, s string, st TextStyle, align Align) {
	style := ""
	if st.Bold {
		style += "B"
	}
	if st.Underline {
		style += "U"
	}
	c.pdf.SetFont(c.family, style, st.Size)
	c.pdf.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(width, LineHeight(st.Size), c.translate(s), "", 0, alignString(align), false, 0, "")
}

func (c *PDFCanvas) Rect(x, y, w, h float64, st RectStyle) {
	mode := ""
	if st.Fill != nil {
		c.pdf.SetFillColor(st.Fill.R, st.Fill.G, st.Fill.B)
		mode += "F"
	}
	if st.Stroke != nil {
		c.pdf.SetDrawColor(st.Stroke.R, st.Stroke.G, st.Stroke.B)
		c.pdf.SetLineWidth(st.LineWidth)
		mode += "D"
	}
	if mode == "" {
		return
	}
	c.pdf.Rect(x, y, w, h, mode)
}

func (c *PDFCanvas) Line(x1, y1, x2, y2 float64, col Color, lineWidth float64) {
	c.pdf.SetDrawColor(col.R, col.G, col.B)
	c.pdf.SetLineWidth(lineWidth)
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *PDFCanvas) Circle(x, y, r float64, fill Color) {
	c.pdf.SetFillColor(fill.R, fill.G, fill.B)
	c.pdf.Circle(x, y, r, "F")
}

func (c *PDFCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *PDFCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *PDFCanvas) Finish(w io.Writer) error {
	if err := c.pdf.Error(); err != nil {
		return err
	}
	return c.pdf.Output(w)
}

func alignString(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}
