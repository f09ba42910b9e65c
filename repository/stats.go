package repository

import (
	"context"
	"fmt"

	"teatr_manager/model"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// genres whose tickets sell above 30 on average
const richGenresQuery = `
SELECT g.name, AVG(t.final_price) AS avg_price
FROM genres g
JOIN spectacles s ON s.genre_id = g.id
JOIN seances se ON se.spectacle_id = s.id
JOIN reservations r ON r.seance_id = se.id
JOIN tickets t ON t.reservation_id = r.id
GROUP BY g.name
HAVING AVG(t.final_price) > 30`

const dramaActorsQuery = `
SELECT p.first_name, p.last_name
FROM actors a
JOIN persons p ON a.person_id = p.id
WHERE EXISTS (
    SELECT 1 FROM spectacle_actors sa
    JOIN spectacles s ON sa.spectacle_id = s.id
    JOIN genres g ON s.genre_id = g.id
    WHERE sa.actor_id = a.person_id AND g.name = 'Dramat'
)`

const longSpectaclesQuery = `
SELECT title, duration_minutes
FROM spectacles
WHERE duration_minutes > ALL (
    SELECT duration_minutes FROM spectacles
    JOIN genres ON spectacles.genre_id = genres.id
    WHERE genres.name = 'Musical'
)`

const highEarnersQuery = `
SELECT p.first_name, p.last_name, e.salary
FROM employees e
JOIN persons p ON e.person_id = p.id
WHERE e.salary > (SELECT AVG(salary) FROM employees)`

// AdminStats runs the four analytics queries. The first failure aborts the rest.
func (r *StatsRepository) AdminStats(ctx context.Context) (model.AdminStats, error) {
	var stats model.AdminStats
	db := r.db.WithContext(ctx)

	if err := db.Raw(richGenresQuery).Scan(&stats.RichGenres).Error; err != nil {
		return stats, fmt.Errorf("rich genres: %w", err)
	}
	if err := db.Raw(dramaActorsQuery).Scan(&stats.DramaActors).Error; err != nil {
		return stats, fmt.Errorf("drama actors: %w", err)
	}
	if err := db.Raw(longSpectaclesQuery).Scan(&stats.LongSpectacles).Error; err != nil {
		return stats, fmt.Errorf("long spectacles: %w", err)
	}
	if err := db.Raw(highEarnersQuery).Scan(&stats.HighEarners).Error; err != nil {
		return stats, fmt.Errorf("high earners: %w", err)
	}
	return stats, nil
}

// UpdatePrices calls the stored procedure that scales every seance base
// price by percentage (negative values lower prices).
func (r *StatsRepository) UpdatePrices(ctx context.Context, percentage float64) error {
	return r.db.WithContext(ctx).Exec("CALL update_seance_prices(?)", percentage).Error
}
