package model

import (
	"mime/multipart"
	"time"
)

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
}

func (Genre) TableName() string { return "genres" }

type Spectacle struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
	PosterUrl       string    `json:"posterUrl"`
	GenreId         *uint     `json:"genreId"`
	PremiereDate    time.Time `json:"premiereDate"`
}

func (Spectacle) TableName() string { return "spectacles" }

// SpectacleListItem is a spectacle joined with its genre name.
type SpectacleListItem struct {
	Spectacle
	GenreName *string `json:"genreName"`
}

type SpectacleInput struct {
	Title       string                `json:"title" form:"title" validate:"required,max=255"`
	Description string                `json:"description" form:"description"`
	Duration    int                   `json:"duration" form:"duration" validate:"required,min=1"`
	GenreId     uint                  `json:"genre_id" form:"genre_id" validate:"required"`
	Poster      *multipart.FileHeader `json:"-" form:"-"`
}

type CastMember struct {
	ActorId   uint   `json:"actorId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	RoleName  string `json:"roleName"`
}

type AvailableActor struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CastInput struct {
	ActorId  uint   `json:"actor_id" form:"actor_id" validate:"required"`
	RoleName string `json:"role_name" form:"role_name"`
}

type SpectacleEditView struct {
	Spectacle       Spectacle        `json:"spectacle"`
	Genres          []Genre          `json:"genres"`
	CurrentCast     []CastMember     `json:"currentCast"`
	AvailableActors []AvailableActor `json:"availableActors"`
}

type Review struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserId      uint   `json:"userId"`
	SpectacleId uint   `json:"spectacleId"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

func (Review) TableName() string { return "reviews" }

type ReviewItem struct {
	Review
	Username string `json:"username"`
}

type ReviewInput struct {
	Rating  int    `json:"rating" form:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" form:"comment" validate:"max=2000"`
}

type SpectacleDetail struct {
	Spectacle SpectacleListItem    `json:"spectacle"`
	Seances   []SeanceWithHall     `json:"seances"`
	Actors    []SpectacleActorItem `json:"actors"`
	Reviews   []ReviewItem         `json:"reviews"`
}
