package repositories

import (
	"pokedex/internal/models"
)

// ImageRepository defines the interface for Image data access.
type ImageRepository interface {
	GetAll() ([]models.Image, error)
	GetByID(id uint) (*models.Image, error)
	GetByPokemon(pokemonID uint) ([]models.Image, error)
	Create(image *models.Image) error
	Update(image *models.Image) error
	Delete(id uint) error
}
