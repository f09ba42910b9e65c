package constants

const (
	ROLE_ADMIN = "admin"
	ROLE_USER  = "user"
)

const (
	REPORT_SALES_GROUPED       = "sales_grouped"
	REPORT_EMPLOYEES_HIERARCHY = "employees_hierarchy"
	REPORT_FINANCIAL_CHART     = "financial_chart"
	REPORT_INVOICE_FORM        = "invoice_form"
)

var REPORT_TYPES = []string{
	REPORT_SALES_GROUPED,
	REPORT_EMPLOYEES_HIERARCHY,
	REPORT_FINANCIAL_CHART,
	REPORT_INVOICE_FORM,
}

const (
	DEFAULT_POSTER_URL  = "/images/default-poster.png"
	POSTER_DIR          = "public/images"
	POSTER_URL_PREFIX   = "/images/"
	DEFAULT_BASE_SALARY = 3000
	CURRENCY            = "PLN"
)

const (
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read request data"
	DATA_INPUT_IS_NOT_NUMBER   = "Parameter must be a number"
	ERROR_INVALID_INPUT        = "Invalid input"
	ERROR_NOT_FOUND            = "Not found"
	ERROR_SQL                  = "SQL error"
	ERROR_BOOKING              = "Booking error"
	ERROR_PROCEDURE            = "Procedure error"
	NOT_ADMIN                  = "Administrator role required"
	NOT_LOGGED_IN              = "No current user"
	SPECTACLE_NOT_FOUND        = "Spectacle not found"
	SEANCE_NOT_FOUND           = "Seance not found"
	ACTOR_NOT_FOUND            = "Actor not found"
	MISSING_START_TIME         = "Missing start time"
	INVALID_CREDENTIALS        = "Invalid username or password"
)
