package report

import (
	"context"
	"fmt"

	"teatr_manager/model"

	"github.com/shopspring/decimal"
)

const (
	InvoicePlaceholder = "No reservations match the given date and amount criteria."
	NoEmail            = "No e-mail provided"
)

const (
	formX      = 50
	formWidth  = 500
	formHeight = 180
	formGap    = 10
	formAfter  = 200
	fieldH     = 25
)

var (
	formTitleStyle = TextStyle{Size: 14, Color: Black, Bold: true}
	labelStyle     = TextStyle{Size: 10, Color: MidGray}
	fieldStyle     = TextStyle{Size: 10, Color: Black}
	amountStyle    = TextStyle{Size: 12, Color: Black, Bold: true}
)

func (g *Generator) renderInvoices(ctx context.Context, doc *Document, f Filter) (Summary, error) {
	rows, err := g.source.ReservationInvoices(ctx, f)
	if err != nil {
		return Summary{}, err
	}
	if len(rows) == 0 {
		doc.Write(InvoicePlaceholder, bodyStyle)
	}

	total := decimal.Zero
	for i, r := range rows {
		if i > 0 {
			doc.EnsureRoom(g.layout.InvoiceMinRoom)
		}
		top := doc.Y() + formGap
		drawInvoice(doc.Canvas(), top, r)
		doc.Cursor().MoveTo(top + formAfter)
		total = total.Add(r.TotalPrice)
	}
	return Summary{Rows: len(rows), Total: total}, nil
}

func drawInvoice(c Canvas, top float64, r model.InvoiceRow) {
	c.Rect(formX, top, formWidth, formHeight, stroked(DarkGray, 2))
	c.Text(formX+10, top+15, 0, fmt.Sprintf("RESERVATION CONFIRMATION FORM NO: %d", r.ResId), formTitleStyle, AlignLeft)
	c.Line(formX, top+40, formX+formWidth, top+40, DarkGray, 1)

	c.Text(60, top+55, 0, "CUSTOMER:", labelStyle, AlignLeft)
	c.Rect(60, top+70, 220, fieldH, filledStroked(FieldFill, DarkGray))
	c.Text(65, top+78, 210, r.FirstName+" "+r.LastName, fieldStyle, AlignLeft)

	email := NoEmail
	if r.Email != nil && *r.Email != "" {
		email = *r.Email
	}
	c.Text(300, top+55, 0, "E-MAIL ADDRESS:", labelStyle, AlignLeft)
	c.Rect(300, top+70, 230, fieldH, filledStroked(FieldFill, DarkGray))
	c.Text(305, top+78, 220, email, fieldStyle, AlignLeft)

	c.Text(60, top+110, 0, "EVENT:", labelStyle, AlignLeft)
	c.Rect(60, top+125, 330, fieldH, filledStroked(EventFill, DarkGray))
	c.Text(65, top+133, 320, EventLabel(r), fieldStyle, AlignLeft)

	c.Text(410, top+110, 0, "AMOUNT DUE (PLN):", labelStyle, AlignLeft)
	c.Rect(410, top+125, 120, fieldH, filledStroked(White, DarkGray))
	c.Text(415, top+131, 110, r.TotalPrice.StringFixed(2)+" PLN", amountStyle, AlignLeft)
}

func EventLabel(r model.InvoiceRow) string {
	return fmt.Sprintf("%s (Date: %s)", r.Title, r.StartTime.Format("2006-01-02 15:04"))
}
