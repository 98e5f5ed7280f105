package models

import "time"

// Image is an externally hosted picture attached to a Pokemon.
// Only the URL is stored; the remote file itself is never managed here.
type Image struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	PokemonID uint      `json:"pokemon_id" gorm:"not null"`
	URL       string    `json:"url" gorm:"type:varchar(500);not null"`
	Caption   string    `json:"caption" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
}
