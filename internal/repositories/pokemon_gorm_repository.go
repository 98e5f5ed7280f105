package repositories

import (
	"errors"
	"fmt"

	"pokedex/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMPokemonRepository is a GORM implementation of PokemonRepository.
type GORMPokemonRepository struct {
	db *gorm.DB
}

// NewGORMPokemonRepository creates a new instance of GORMPokemonRepository.
func NewGORMPokemonRepository(db *gorm.DB) *GORMPokemonRepository {
	return &GORMPokemonRepository{
		db: db,
	}
}

// GetAll retrieves all Pokemon with their reviews, images and list
// memberships preloaded.
func (r *GORMPokemonRepository) GetAll() ([]models.Pokemon, error) {
	var pokemon []models.Pokemon
	if err := r.db.Preload("Reviews").Preload("Images").Preload("Lists").Find(&pokemon).Error; err != nil {
		return nil, fmt.Errorf("failed to get all pokemon: %w", err)
	}
	return pokemon, nil
}

// GetByID retrieves a single Pokemon by its ID with nested records preloaded.
func (r *GORMPokemonRepository) GetByID(id uint) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	if err := r.db.Preload("Reviews").Preload("Images").Preload("Lists").First(&pokemon, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pokemon with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get pokemon by ID %d: %w", id, err)
	}
	return &pokemon, nil
}

// Create persists a new Pokemon, and its image when one is supplied, in a
// single transaction.
func (r *GORMPokemonRepository) Create(pokemon *models.Pokemon, image *models.Image) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pokemon).Error; err != nil {
			return err
		}
		if image != nil {
			image.PokemonID = pokemon.ID
			image.UserID = pokemon.UserID
			if err := tx.Create(image).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create pokemon: %w", err)
	}
	return nil
}

// Update replaces the stored Pokemon row. Associations are left untouched.
func (r *GORMPokemonRepository) Update(pokemon *models.Pokemon) error {
	res := r.db.Omit(clause.Associations).Save(pokemon)
	if res.Error != nil {
		return fmt.Errorf("failed to update pokemon: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pokemon with ID %d: %w", pokemon.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a Pokemon and every dependent row. Children go first so a
// failed transaction never leaves orphans behind.
func (r *GORMPokemonRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Review{}, "pokemon_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Image{}, "pokemon_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ListPokemon{}, "pokemon_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Pokemon{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("pokemon with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete pokemon %d: %w", id, err)
	}
	return nil
}
