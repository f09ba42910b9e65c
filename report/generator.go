package report

import (
	"context"
	"fmt"
	"io"

	"teatr_manager/constants"
	"teatr_manager/utils"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	DocumentTitle   = "THEATER REPORT"
	ErrorLinePrefix = "Report generation error: "
)

var (
	titleStyle    = TextStyle{Size: 20, Color: Black}
	criteriaStyle = TextStyle{Size: 10, Color: Gray}
	headingStyle  = TextStyle{Size: 16, Color: Black, Underline: true}
	bodyStyle     = TextStyle{Size: 12, Color: Black}
	totalStyle    = TextStyle{Size: 14, Color: Black, Bold: true}
	errorStyle    = TextStyle{Size: 12, Color: Red}
)

// Summary is what a renderer reports back about its section.
type Summary struct {
	Rows  int
	Total decimal.Decimal
}

// Result describes a finished document. Err is the error that was written
// into the document, if any.
type Result struct {
	ReportType string
	Pages      int
	Summary
	Err error
}

type renderFunc func(g *Generator, ctx context.Context, doc *Document, f Filter) (Summary, error)

var renderers = map[string]renderFunc{
	constants.REPORT_SALES_GROUPED:       (*Generator).renderSales,
	constants.REPORT_EMPLOYEES_HIERARCHY: (*Generator).renderEmployees,
	constants.REPORT_FINANCIAL_CHART:     (*Generator).renderChart,
	constants.REPORT_INVOICE_FORM:        (*Generator).renderInvoices,
}

type Generator struct {
	source    Source
	layout    Layout
	newCanvas func(Layout) Canvas
}

func NewGenerator(source Source, layout Layout) *Generator {
	return &Generator{
		source: source,
		layout: layout,
		newCanvas: func(l Layout) Canvas {
			return NewPDFCanvas(l)
		},
	}
}

// WithCanvas replaces the PDF backend, used by tests with a Recorder.
func (g *Generator) WithCanvas(fn func(Layout) Canvas) *Generator {
	g.newCanvas = fn
	return g
}

// Generate renders the report for f into w. Query and render failures are
// written into the document and returned in Result.Err; the returned error
// is only set when the document could not be written out.
func (g *Generator) Generate(ctx context.Context, w io.Writer, f Filter) (Result, error) {
	canvas := g.newCanvas(g.layout)
	doc := NewDocument(canvas, g.layout)
	log := utils.Log.WithFields(logrus.Fields{
		"reportType": f.ReportType,
		"dateFrom":   f.DateFrom,
		"dateTo":     f.DateTo,
		"minAmount":  f.MinAmount,
	})

	writeHeader(doc, f)

	res := Result{ReportType: f.ReportType}
	render, ok := renderers[f.ReportType]
	if !ok {
		log.Warn("unknown report type, rendering header only")
	} else {
		summary, err := render(g, ctx, doc, f)
		res.Summary = summary
		if err != nil {
			res.Err = err
			log.WithError(err).Error("report generation failed")
			doc.Write(ErrorLinePrefix+err.Error(), errorStyle)
		}
	}

	res.Pages = canvas.PageCount()
	if err := canvas.Finish(w); err != nil {
		return res, fmt.Errorf("write report: %w", err)
	}
	log.WithFields(logrus.Fields{"rows": res.Rows, "pages": res.Pages}).Info("report generated")
	return res, nil
}

func writeHeader(doc *Document, f Filter) {
	doc.WriteCentered(DocumentTitle, titleStyle)
	doc.MoveDown(0.5)
	doc.WriteCentered(f.CriteriaLine(), criteriaStyle)
	doc.MoveDown(2)
}
