package repository

import (
	"context"

	"teatr_manager/model"

	"gorm.io/gorm"
)

// PosterFunc resolves the poster URL of a freshly inserted spectacle.
type PosterFunc func(ctx context.Context, spectacleID uint) (string, error)

type SpectacleRepository struct {
	db *gorm.DB
}

func NewSpectacleRepository(db *gorm.DB) *SpectacleRepository {
	return &SpectacleRepository{db: db}
}

func (r *SpectacleRepository) Genres(ctx context.Context) ([]model.Genre, error) {
	var genres []model.Genre
	err := r.db.WithContext(ctx).Raw("SELECT * FROM genres ORDER BY name").Scan(&genres).Error
	return genres, err
}

// List returns spectacles with their genre name, newest premiere first,
// optionally restricted to one genre.
func (r *SpectacleRepository) List(ctx context.Context, genreID *uint) ([]model.SpectacleListItem, error) {
	q := "SELECT s.*, g.name AS genre_name FROM spectacles s LEFT JOIN genres g ON s.genre_id = g.id"
	var args []any
	if genreID != nil {
		q += " WHERE s.genre_id = ?"
		args = append(args, *genreID)
	}
	q += " ORDER BY s.premiere_date DESC"

	var rows []model.SpectacleListItem
	err := r.db.WithContext(ctx).Raw(q, args...).Scan(&rows).Error
	return rows, err
}

func (r *SpectacleRepository) Titles(ctx context.Context) ([]model.Spectacle, error) {
	var rows []model.Spectacle
	err := r.db.WithContext(ctx).Raw("SELECT id, title FROM spectacles ORDER BY title").Scan(&rows).Error
	return rows, err
}

func (r *SpectacleRepository) Find(ctx context.Context, id uint) (model.Spectacle, error) {
	var s model.Spectacle
	err := notFound(r.db.WithContext(ctx).Raw("SELECT * FROM spectacles WHERE id = ?", id).Scan(&s))
	return s, err
}

func (r *SpectacleRepository) FindWithGenre(ctx context.Context, id uint) (model.SpectacleListItem, error) {
	var s model.SpectacleListItem
	res := r.db.WithContext(ctx).Raw(`SELECT s.*, g.name AS genre_name
		FROM spectacles s LEFT JOIN genres g ON s.genre_id = g.id
		WHERE s.id = ?`, id).Scan(&s)
	return s, notFound(res)
}

// Create inserts the spectacle with a placeholder poster, then stores the
// URL returned by poster. Both statements share one transaction.
func (r *SpectacleRepository) Create(ctx context.Context, in model.SpectacleInput, poster PosterFunc) (uint, error) {
	var id uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row struct{ ID uint }
		err := tx.Raw(`INSERT INTO spectacles (title, description, duration_minutes, poster_url, genre_id, premiere_date)
			VALUES (?, ?, ?, 'temp', ?, NOW()) RETURNING id`,
			in.Title, in.Description, in.Duration, in.GenreId).Scan(&row).Error
		if err != nil {
			return err
		}

		url, err := poster(ctx, row.ID)
		if err != nil {
			return err
		}
		if err := tx.Exec("UPDATE spectacles SET poster_url = ? WHERE id = ?", url, row.ID).Error; err != nil {
			return err
		}
		id = row.ID
		return nil
	})
	return id, err
}

// Update rewrites the editable columns. The poster is only replaced when
// posterURL is set.
func (r *SpectacleRepository) Update(ctx context.Context, id uint, in model.SpectacleInput, posterURL *string) error {
	db := r.db.WithContext(ctx)
	if posterURL != nil {
		return db.Exec("UPDATE spectacles SET title = ?, description = ?, duration_minutes = ?, genre_id = ?, poster_url = ? WHERE id = ?",
			in.Title, in.Description, in.Duration, in.GenreId, *posterURL, id).Error
	}
	return db.Exec("UPDATE spectacles SET title = ?, description = ?, duration_minutes = ?, genre_id = ? WHERE id = ?",
		in.Title, in.Description, in.Duration, in.GenreId, id).Error
}

func (r *SpectacleRepository) EditView(ctx context.Context, id uint) (model.SpectacleEditView, error) {
	var view model.SpectacleEditView
	s, err := r.Find(ctx, id)
	if err != nil {
		return view, err
	}
	view.Spectacle = s

	if view.Genres, err = r.Genres(ctx); err != nil {
		return view, err
	}

	db := r.db.WithContext(ctx)
	err = db.Raw(`SELECT sa.actor_id, p.first_name, p.last_name, sa.role_name
		FROM spectacle_actors sa
		JOIN actors a ON sa.actor_id = a.person_id
		JOIN persons p ON a.person_id = p.id
		WHERE sa.spectacle_id = ?`, id).Scan(&view.CurrentCast).Error
	if err != nil {
		return view, err
	}

	err = db.Raw(`SELECT a.person_id AS id, p.first_name, p.last_name
		FROM actors a
		JOIN persons p ON a.person_id = p.id
		WHERE a.person_id NOT IN (SELECT actor_id FROM spectacle_actors WHERE spectacle_id = ?)
		ORDER BY p.last_name`, id).Scan(&view.AvailableActors).Error
	return view, err
}

func (r *SpectacleRepository) AddCast(ctx context.Context, spectacleID uint, in model.CastInput) error {
	return r.db.WithContext(ctx).Exec("INSERT INTO spectacle_actors (spectacle_id, actor_id, role_name) VALUES (?, ?, ?)",
		spectacleID, in.ActorId, in.RoleName).Error
}

// RemoveCast deletes the cast assignment only; the actor stays.
func (r *SpectacleRepository) RemoveCast(ctx context.Context, spectacleID, actorID uint) error {
	return r.db.WithContext(ctx).Exec("DELETE FROM spectacle_actors WHERE spectacle_id = ? AND actor_id = ?",
		spectacleID, actorID).Error
}

// Detail loads the public spectacle page: upcoming seances, cast and reviews.
func (r *SpectacleRepository) Detail(ctx context.Context, id uint) (model.SpectacleDetail, error) {
	var d model.SpectacleDetail
	s, err := r.FindWithGenre(ctx, id)
	if err != nil {
		return d, err
	}
	d.Spectacle = s

	db := r.db.WithContext(ctx)
	err = db.Raw(`SELECT s.*, h.name AS hall_name
		FROM seances s JOIN halls h ON s.hall_id = h.id
		WHERE s.spectacle_id = ? AND s.start_time > NOW()
		ORDER BY s.start_time`, id).Scan(&d.Seances).Error
	if err != nil {
		return d, err
	}

	err = db.Raw(`SELECT a.person_id, p.first_name, p.last_name, a.bio, sa.role_name
		FROM actors a
		JOIN persons p ON a.person_id = p.id
		JOIN spectacle_actors sa ON a.person_id = sa.actor_id
		WHERE sa.spectacle_id = ?`, id).Scan(&d.Actors).Error
	if err != nil {
		return d, err
	}

	err = db.Raw(`SELECT r.*, u.username
		FROM reviews r JOIN users u ON r.user_id = u.person_id
		WHERE r.spectacle_id = ?`, id).Scan(&d.Reviews).Error
	return d, err
}

func (r *SpectacleRepository) AddReview(ctx context.Context, userID, spectacleID uint, in model.ReviewInput) error {
	return r.db.WithContext(ctx).Exec("INSERT INTO reviews (user_id, spectacle_id, rating, comment) VALUES (?, ?, ?, ?)",
		userID, spectacleID, in.Rating, in.Comment).Error
}
