package report

import (
	"context"

	"teatr_manager/model"
)

// Source runs the aggregate queries behind each report type.
type Source interface {
	SalesByGenre(ctx context.Context, f Filter) ([]model.SalesRow, error)
	EmployeesHierarchy(ctx context.Context, f Filter) ([]model.EmployeeRow, error)
	TopSpectacles(ctx context.Context, f Filter) ([]model.ChartRow, error)
	ReservationInvoices(ctx context.Context, f Filter) ([]model.InvoiceRow, error)
}
