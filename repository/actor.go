package repository

import (
	"context"

	"teatr_manager/constants"
	"teatr_manager/model"
	"teatr_manager/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ActorRepository struct {
	db *gorm.DB
}

func NewActorRepository(db *gorm.DB) *ActorRepository {
	return &ActorRepository{db: db}
}

func (r *ActorRepository) List(ctx context.Context) ([]model.ActorListItem, error) {
	var rows []model.ActorListItem
	err := r.db.WithContext(ctx).Raw(`SELECT a.person_id AS id, p.first_name, p.last_name, a.base_salary,
			COUNT(sa.spectacle_id) AS roles_count
		FROM actors a
		JOIN persons p ON a.person_id = p.id
		LEFT JOIN spectacle_actors sa ON a.person_id = sa.actor_id
		GROUP BY a.person_id, p.first_name, p.last_name
		ORDER BY p.last_name ASC`).Scan(&rows).Error
	return rows, err
}

func (r *ActorRepository) Find(ctx context.Context, id uint) (model.ActorDetail, error) {
	var a model.ActorDetail
	res := r.db.WithContext(ctx).Raw(`SELECT a.person_id AS id, p.first_name, p.last_name, p.email, a.base_salary, a.bio
		FROM actors a JOIN persons p ON a.person_id = p.id
		WHERE a.person_id = ?`, id).Scan(&a)
	return a, notFound(res)
}

// Create inserts the person and the actor row in one transaction. A missing
// base salary falls back to the default.
func (r *ActorRepository) Create(ctx context.Context, in model.ActorInput) (uint, error) {
	salary := decimal.NewFromInt(constants.DEFAULT_BASE_SALARY)
	if in.BaseSalary != nil {
		salary = *in.BaseSalary
	}

	var id uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var person struct{ ID uint }
		err := tx.Raw("INSERT INTO persons (first_name, last_name, email) VALUES (?, ?, ?) RETURNING id",
			in.FirstName, in.LastName, utils.StringPtr(in.Email)).Scan(&person).Error
		if err != nil {
			return err
		}
		if err := tx.Exec("INSERT INTO actors (person_id, bio, base_salary) VALUES (?, ?, ?)",
			person.ID, in.Bio, salary).Error; err != nil {
			return err
		}
		id = person.ID
		return nil
	})
	return id, err
}

// Update rewrites the person and the actor row in one transaction. The base
// salary is kept when none is given.
func (r *ActorRepository) Update(ctx context.Context, id uint, in model.ActorInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("UPDATE persons SET first_name = ?, last_name = ?, email = ? WHERE id = ?",
			in.FirstName, in.LastName, utils.StringPtr(in.Email), id).Error; err != nil {
			return err
		}
		if in.BaseSalary == nil {
			return tx.Exec("UPDATE actors SET bio = ? WHERE person_id = ?", in.Bio, id).Error
		}
		return tx.Exec("UPDATE actors SET base_salary = ?, bio = ? WHERE person_id = ?",
			*in.BaseSalary, in.Bio, id).Error
	})
}
