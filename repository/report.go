package repository

import (
	"context"

	"teatr_manager/model"
	"teatr_manager/report"

	"gorm.io/gorm"
)

// ReportRepository runs the aggregate queries behind the PDF reports.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const salesByGenreQuery = `
SELECT g.name AS genre, s.title, COUNT(t.id) AS tickets, COALESCE(SUM(t.final_price), 0) AS income
FROM genres g
JOIN spectacles s ON s.genre_id = g.id
LEFT JOIN seances se ON se.spectacle_id = s.id
LEFT JOIN reservations r ON r.seance_id = se.id
LEFT JOIN tickets t ON t.reservation_id = r.id
WHERE se.start_time >= ? AND se.start_time <= ?
GROUP BY g.name, s.title
HAVING COALESCE(SUM(t.final_price), 0) >= ?
ORDER BY g.name, income DESC`

const employeesHierarchyQuery = `
SELECT p.first_name, p.last_name, p.email, e.salary, e.hire_date,
       pm.last_name AS manager_name, pm.first_name AS manager_first, d.name AS dept
FROM employees e
JOIN persons p ON e.person_id = p.id
LEFT JOIN employees m ON e.manager_id = m.person_id
LEFT JOIN persons pm ON m.person_id = pm.id
JOIN departments d ON e.department_id = d.id
WHERE e.hire_date >= ? AND e.hire_date <= ? AND e.salary >= ?
ORDER BY d.name, e.salary DESC`

const topSpectaclesQuery = `
SELECT s.title, COALESCE(SUM(t.final_price), 0) AS total
FROM spectacles s
JOIN seances se ON se.spectacle_id = s.id
JOIN reservations r ON r.seance_id = se.id
JOIN tickets t ON t.reservation_id = r.id
WHERE se.start_time >= ? AND se.start_time <= ?
GROUP BY s.title
HAVING COALESCE(SUM(t.final_price), 0) >= ?
ORDER BY total DESC
LIMIT 5`

const reservationInvoicesQuery = `
SELECT r.id AS res_id, p.first_name, p.last_name, p.email, r.reservation_date,
       s.title, se.start_time, COALESCE(SUM(t.final_price), 0) AS total_price
FROM reservations r
JOIN users u ON r.user_id = u.person_id
JOIN persons p ON u.person_id = p.id
JOIN seances se ON r.seance_id = se.id
JOIN spectacles s ON se.spectacle_id = s.id
LEFT JOIN tickets t ON t.reservation_id = r.id
WHERE r.reservation_date >= ? AND r.reservation_date <= ?
GROUP BY r.id, p.first_name, p.last_name, p.email, r.reservation_date, s.title, se.start_time
HAVING COALESCE(SUM(t.final_price), 0) >= ?
ORDER BY r.reservation_date DESC
LIMIT 4`

func (r *ReportRepository) SalesByGenre(ctx context.Context, f report.Filter) ([]model.SalesRow, error) {
	var rows []model.SalesRow
	err := r.db.WithContext(ctx).Raw(salesByGenreQuery, f.DateFrom, f.DateTo, f.MinAmount).Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) EmployeesHierarchy(ctx context.Context, f report.Filter) ([]model.EmployeeRow, error) {
	var rows []model.EmployeeRow
	err := r.db.WithContext(ctx).Raw(employeesHierarchyQuery, f.DateFrom, f.DateTo, f.MinAmount).Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) TopSpectacles(ctx context.Context, f report.Filter) ([]model.ChartRow, error) {
	var rows []model.ChartRow
	err := r.db.WithContext(ctx).Raw(topSpectaclesQuery, f.DateFrom, f.DateTo, f.MinAmount).Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) ReservationInvoices(ctx context.Context, f report.Filter) ([]model.InvoiceRow, error) {
	var rows []model.InvoiceRow
	err := r.db.WithContext(ctx).Raw(reservationInvoicesQuery, f.DateFrom, f.DateTo, f.MinAmount).Scan(&rows).Error
	return rows, err
}
