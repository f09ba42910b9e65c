package repository

import (
	"context"

	"teatr_manager/model"

	"gorm.io/gorm"
)

type SeanceRepository struct {
	db *gorm.DB
}

func NewSeanceRepository(db *gorm.DB) *SeanceRepository {
	return &SeanceRepository{db: db}
}

func (r *SeanceRepository) Halls(ctx context.Context) ([]model.Hall, error) {
	var halls []model.Hall
	err := r.db.WithContext(ctx).Raw("SELECT id, name FROM halls ORDER BY name").Scan(&halls).Error
	return halls, err
}

func (r *SeanceRepository) Find(ctx context.Context, id uint) (model.Seance, error) {
	var s model.Seance
	err := notFound(r.db.WithContext(ctx).Raw("SELECT * FROM seances WHERE id = ?", id).Scan(&s))
	return s, err
}

func (r *SeanceRepository) Create(ctx context.Context, in model.SeanceInput) error {
	return r.db.WithContext(ctx).Exec("INSERT INTO seances (spectacle_id, hall_id, start_time, base_price) VALUES (?, ?, ?, ?)",
		in.SpectacleId, in.HallId, in.StartTime, in.Price).Error
}

func (r *SeanceRepository) Update(ctx context.Context, id uint, in model.SeanceInput) error {
	return r.db.WithContext(ctx).Exec("UPDATE seances SET spectacle_id = ?, hall_id = ?, start_time = ?, base_price = ? WHERE id = ?",
		in.SpectacleId, in.HallId, in.StartTime, in.Price, id).Error
}

// BookingDetail is the seance with its spectacle title and hall name.
func (r *SeanceRepository) BookingDetail(ctx context.Context, id uint) (model.BookingDetail, error) {
	var d model.BookingDetail
	res := r.db.WithContext(ctx).Raw(`SELECT se.*, s.title, h.name AS hall_name
		FROM seances se
		JOIN spectacles s ON se.spectacle_id = s.id
		JOIN halls h ON se.hall_id = h.id
		WHERE se.id = ?`, id).Scan(&d)
	return d, notFound(res)
}

// HallSeats lists seats row by row.
func (r *SeanceRepository) HallSeats(ctx context.Context, hallID uint) ([]model.Seat, error) {
	var seats []model.Seat
	err := r.db.WithContext(ctx).Raw("SELECT * FROM seats WHERE hall_id = ? ORDER BY grid_y, grid_x", hallID).Scan(&seats).Error
	return seats, err
}

// TakenSeatIDs lists the seats that already have a ticket for the seance.
func (r *SeanceRepository) TakenSeatIDs(ctx context.Context, seanceID uint) ([]uint, error) {
	var rows []struct{ SeatId uint }
	err := r.db.WithContext(ctx).Raw(`SELECT t.seat_id
		FROM tickets t JOIN reservations r ON t.reservation_id = r.id
		WHERE r.seance_id = ?`, seanceID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.SeatId)
	}
	return ids, nil
}
