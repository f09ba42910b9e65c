package repository

import (
	"context"

	"teatr_manager/model"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

const dailyRevenueQuery = `
SELECT TO_CHAR(se.start_time, 'YYYY-MM-DD') AS day, COALESCE(SUM(t.final_price), 0) AS revenue
FROM tickets t
JOIN reservations r ON t.reservation_id = r.id
JOIN seances se ON r.seance_id = se.id
WHERE se.start_time >= ? AND se.start_time <= ?
GROUP BY day
ORDER BY day ASC`

// Dashboard loads the admin overview. q.From and q.To are YYYY-MM-DD days,
// both inclusive.
func (r *DashboardRepository) Dashboard(ctx context.Context, q model.DashboardQuery) (model.AdminDashboard, error) {
	out := model.AdminDashboard{Query: q}
	db := r.db.WithContext(ctx)

	err := db.Raw(`SELECT s.*, g.name AS genre_name
		FROM spectacles s LEFT JOIN genres g ON s.genre_id = g.id
		ORDER BY s.id DESC`).Scan(&out.Spectacles).Error
	if err != nil {
		return out, err
	}

	err = db.Raw(`SELECT se.id, s.title, se.start_time, se.base_price, h.name AS hall
		FROM seances se
		JOIN spectacles s ON se.spectacle_id = s.id
		JOIN halls h ON se.hall_id = h.id
		ORDER BY se.start_time`).Scan(&out.Seances).Error
	if err != nil {
		return out, err
	}

	err = db.Raw(`SELECT title, sold_tickets AS tickets_sold, revenue
		FROM v_financial_report ORDER BY revenue DESC LIMIT 10`).Scan(&out.Report).Error
	if err != nil {
		return out, err
	}

	err = db.Raw(`SELECT p.first_name, p.last_name, e.*
		FROM employees e JOIN persons p ON e.person_id = p.id
		ORDER BY p.last_name LIMIT 5`).Scan(&out.Employees).Error
	if err != nil {
		return out, err
	}

	err = db.Raw(dailyRevenueQuery, q.From, q.To+" 23:59:59").Scan(&out.ChartData).Error
	return out, err
}
