package model

import "github.com/shopspring/decimal"

type GenreAvgPrice struct {
	Name     string          `json:"name"`
	AvgPrice decimal.Decimal `json:"avgPrice"`
}

type PersonName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type SpectacleDuration struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
}

type HighEarner struct {
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Salary    decimal.Decimal `json:"salary"`
}

// AdminStats holds the four analytics result sets.
type AdminStats struct {
	RichGenres     []GenreAvgPrice     `json:"richGenres"`
	DramaActors    []PersonName        `json:"dramaActors"`
	LongSpectacles []SpectacleDuration `json:"longSpectacles"`
	HighEarners    []HighEarner        `json:"highEarners"`
}

type UpdatePricesInput struct {
	Percentage float64 `json:"percentage" form:"percentage" validate:"gte=-100"`
}

type HomeView struct {
	Spectacles    []SpectacleListItem `json:"spectacles"`
	Genres        []Genre             `json:"genres"`
	SelectedGenre *uint               `json:"selectedGenre"`
}
