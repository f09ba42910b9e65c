package model

import "github.com/shopspring/decimal"

type Actor struct {
	PersonId   uint            `gorm:"primaryKey" json:"personId"`
	Bio        string          `json:"bio"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
}

func (Actor) TableName() string { return "actors" }

type SpectacleActor struct {
	SpectacleId uint   `json:"spectacleId"`
	ActorId     uint   `json:"actorId"`
	RoleName    string `json:"roleName"`
}

func (SpectacleActor) TableName() string { return "spectacle_actors" }

type ActorListItem struct {
	ID         uint            `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	RolesCount int64           `json:"rolesCount"`
}

type ActorDetail struct {
	ID         uint            `json:"id"`
	FirstName  string          `json:"firstName"`
	LastName   string          `json:"lastName"`
	Email      *string         `json:"email"`
	BaseSalary decimal.Decimal `json:"baseSalary"`
	Bio        string          `json:"bio"`
}

// SpectacleActorItem is a cast entry shown on the public spectacle page.
type SpectacleActorItem struct {
	PersonId  uint   `json:"personId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	RoleName  string `json:"roleName"`
}

type ActorInput struct {
	FirstName  string           `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName   string           `json:"last_name" form:"last_name" validate:"required,max=100"`
	Email      string           `json:"email" form:"email" validate:"omitempty,email"`
	Bio        string           `json:"bio" form:"bio"`
	BaseSalary *decimal.Decimal `json:"base_salary" form:"-"`
}
