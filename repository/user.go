package repository

import (
	"context"

	"teatr_manager/constants"
	"teatr_manager/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userSelect = `SELECT u.person_id, u.role, u.username, u.password_hash, p.first_name, p.last_name, p.email
FROM users u JOIN persons p ON u.person_id = p.id`

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.UserRecord, error) {
	var u model.UserRecord
	res := r.db.WithContext(ctx).Raw(userSelect+" WHERE u.username = ?", username).Scan(&u)
	return u, notFound(res)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (model.UserRecord, error) {
	var u model.UserRecord
	res := r.db.WithContext(ctx).Raw(userSelect+" WHERE u.person_id = ?", id).Scan(&u)
	return u, notFound(res)
}

// FirstAdmin returns any user with the admin role.
func (r *UserRepository) FirstAdmin(ctx context.Context) (model.UserRecord, error) {
	var u model.UserRecord
	res := r.db.WithContext(ctx).Raw(userSelect+" WHERE u.role = ? ORDER BY u.person_id LIMIT 1", constants.ROLE_ADMIN).Scan(&u)
	return u, notFound(res)
}
