package models

import "time"

// List is a user-curated, named collection of Pokemon.
type List struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Pokemon []ListPokemon `json:"pokemon" gorm:"foreignKey:ListID"`
}

// ListPokemon links a List to a Pokemon. Each pair may appear only once.
type ListPokemon struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	ListID    uint `json:"list_id" gorm:"not null;uniqueIndex:idx_list_pokemon"`
	PokemonID uint `json:"pokemon_id" gorm:"not null;uniqueIndex:idx_list_pokemon"`
}

// TableName keeps the uninflected table name.
func (ListPokemon) TableName() string {
	return "list_pokemon"
}
