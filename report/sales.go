package report

import (
	"context"
	"fmt"

	"teatr_manager/model"

	"github.com/shopspring/decimal"
)

const (
	salesHeading     = "Financial analysis: sales by genre"
	SalesPlaceholder = "No data for the given criteria."
)

var genreStyle = TextStyle{Size: 14, Color: Blue}

func (g *Generator) renderSales(ctx context.Context, doc *Document, f Filter) (Summary, error) {
	doc.Write(salesHeading, headingStyle)
	doc.MoveDown(1)

	rows, err := g.source.SalesByGenre(ctx, f)
	if err != nil {
		return Summary{}, err
	}

	total := decimal.Zero
	if len(rows) == 0 {
		doc.Write(SalesPlaceholder, bodyStyle)
	}

	for _, genre := range GroupAdjacent(rows, func(r model.SalesRow) string { return r.Genre }) {
		doc.MoveDown(0.5)
		doc.Write("Category: "+genre.Key, genreStyle)
		for _, r := range genre.Items {
			total = total.Add(r.Income)
			doc.Write(fmt.Sprintf(" - %s: %d tickets, Revenue: %s PLN", r.Title, r.Tickets, r.Income.StringFixed(2)), bodyStyle)
		}
	}

	doc.MoveDown(2)
	doc.Write(fmt.Sprintf("TOTAL REVENUE FOR FILTER: %s PLN", total.StringFixed(2)), totalStyle)
	return Summary{Rows: len(rows), Total: total}, nil
}
