package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRow is one genre/title line of the sales_grouped report.
type SalesRow struct {
	Genre   string          `json:"genre"`
	Title   string          `json:"title"`
	Tickets int64           `json:"tickets"`
	Income  decimal.Decimal `json:"income"`
}

// EmployeeRow is one employee of the employees_hierarchy report.
type EmployeeRow struct {
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	Email        *string         `json:"email"`
	Salary       decimal.Decimal `json:"salary"`
	HireDate     time.Time       `json:"hireDate"`
	ManagerName  *string         `json:"managerName"`
	ManagerFirst *string         `json:"managerFirst"`
	Dept         string          `json:"dept"`
}

// ChartRow is one bar of the financial_chart report.
type ChartRow struct {
	Title string          `json:"title"`
	Total decimal.Decimal `json:"total"`
}

// InvoiceRow is one reservation form of the invoice_form report.
type InvoiceRow struct {
	ResId           uint            `json:"resId"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           *string         `json:"email"`
	ReservationDate time.Time       `json:"reservationDate"`
	Title           string          `json:"title"`
	StartTime       time.Time       `json:"startTime"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

type ReportRequest struct {
	ReportType string `json:"reportType" form:"reportType" validate:"required"`
	DateFrom   string `json:"dateFrom" form:"dateFrom"`
	DateTo     string `json:"dateTo" form:"dateTo"`
	MinAmount  string `json:"minAmount" form:"minAmount"`
}

type ReportTypeInfo struct {
	Type  string `json:"type"`
	Label string `json:"label"`
}

// FinancialViewRow reads the v_financial_report view.
type FinancialViewRow struct {
	Title       string          `json:"title"`
	TicketsSold int64           `json:"ticketsSold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type DailyRevenue struct {
	Day     string          `json:"day"`
	Revenue decimal.Decimal `json:"revenue"`
}

type DashboardQuery struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type AdminDashboard struct {
	Spectacles []SpectacleListItem `json:"spectacles"`
	Seances    []SeanceOverview    `json:"seances"`
	Report     []FinancialViewRow  `json:"report"`
	Employees  []EmployeeOverview  `json:"employees"`
	ChartData  []DailyRevenue      `json:"chartData"`
	Query      DashboardQuery      `json:"query"`
}
