package models

import "time"

// Review is a user's rating of a Pokemon. A user may review the same
// Pokemon more than once; no uniqueness is enforced.
type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	PokemonID uint      `json:"pokemon_id" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"not null"`
	Title     string    `json:"title" gorm:"type:varchar(255)"`
	Body      string    `json:"body" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
