package repositories

import (
	"pokedex/internal/models"
)

// PokemonRepository defines the interface for Pokemon data access.
type PokemonRepository interface {
	GetAll() ([]models.Pokemon, error)
	GetByID(id uint) (*models.Pokemon, error)
	// Create persists the Pokemon and, when image is non-nil, the Image in
	// a single transaction. No partial row survives a failure.
	Create(pokemon *models.Pokemon, image *models.Image) error
	Update(pokemon *models.Pokemon) error
	// Delete removes the Pokemon and all dependent reviews, images and
	// list memberships atomically.
	Delete(id uint) error
}
