package models

import "time"

// Pokemon is a catalog entry created and owned by a single user.
type Pokemon struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null"`
	Description   string    `json:"description" gorm:"type:text"`
	Type          string    `json:"type" gorm:"type:varchar(100);not null"`
	TypeSecondary string    `json:"type_secondary" gorm:"type:varchar(100)"`
	Region        string    `json:"region" gorm:"type:varchar(100)"`
	Category      string    `json:"category" gorm:"type:varchar(100)"`
	UserID        uint      `json:"user_id" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`

	Reviews []Review      `json:"reviews" gorm:"foreignKey:PokemonID"`
	Images  []Image       `json:"images" gorm:"foreignKey:PokemonID"`
	Lists   []ListPokemon `json:"lists" gorm:"foreignKey:PokemonID"`
}

// TableName keeps the uninflected table name.
func (Pokemon) TableName() string {
	return "pokemon"
}
