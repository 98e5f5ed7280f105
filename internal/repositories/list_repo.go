package repositories

import (
	"pokedex/internal/models"
)

// ListRepository defines the interface for List and membership data access.
type ListRepository interface {
	GetAll() ([]models.List, error)
	GetByID(id uint) (*models.List, error)
	Create(list *models.List) error
	Update(list *models.List) error
	// Delete removes the list and its membership rows atomically.
	Delete(id uint) error
	// AddPokemon links a Pokemon to a list. A second link for the same
	// pair fails with ErrDuplicate.
	AddPokemon(listID, pokemonID uint) (*models.ListPokemon, error)
	// RemovePokemon unlinks a Pokemon from a list. A missing membership
	// row fails with ErrNotFound.
	RemovePokemon(listID, pokemonID uint) error
}
