package repositories

import (
	"pokedex/internal/models"
)

// ReviewRepository defines the interface for Review data access.
type ReviewRepository interface {
	GetByPokemon(pokemonID uint) ([]models.Review, error)
	GetByID(id uint) (*models.Review, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id uint) error
}
