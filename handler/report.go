package handler

import (
	"bufio"
	"fmt"
	"time"

	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/report"
	"teatr_manager/utils"

	"github.com/gofiber/fiber/v2"
)

var reportLabels = map[string]string{
	constants.REPORT_SALES_GROUPED:       "Sales by genre",
	constants.REPORT_EMPLOYEES_HIERARCHY: "Employees and managers",
	constants.REPORT_FINANCIAL_CHART:     "Top spectacles chart",
	constants.REPORT_INVOICE_FORM:        "Reservation forms",
}

func (h *Handler) GetReportTypes(c *fiber.Ctx) error {
	types := make([]model.ReportTypeInfo, 0, len(constants.REPORT_TYPES))
	for _, t := range constants.REPORT_TYPES {
		types = append(types, model.ReportTypeInfo{Type: t, Label: reportLabels[t]})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, types)
}

// GenerateReport answers with the PDF headers and renders the document into
// the response body stream. Query errors after this point end up inside
// the document, not in the status code.
func (h *Handler) GenerateReport(c *fiber.Ctx) error {
	input, ok := c.Locals("inputReport").(model.ReportRequest)
	if !ok {
		return localsError(c, "inputReport")
	}
	f := report.NewFilter(input.ReportType, input.DateFrom, input.DateTo, input.MinAmount)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, f.FileName(time.Now())))
	c.Status(fiber.StatusOK)

	ctx := c.UserContext()
	gen := h.Reports
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		if _, err := gen.Generate(ctx, w, f); err != nil {
			utils.Log.WithError(err).WithField("report_type", f.ReportType).Error("report output failed")
		}
		if err := w.Flush(); err != nil {
			utils.Log.WithError(err).Debug("report client went away")
		}
	})
	return nil
}
