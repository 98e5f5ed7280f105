package repositories

import (
	"errors"
	"fmt"

	"pokedex/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMListRepository is a GORM implementation of ListRepository.
type GORMListRepository struct {
	db *gorm.DB
}

// NewGORMListRepository creates a new instance of GORMListRepository.
func NewGORMListRepository(db *gorm.DB) *GORMListRepository {
	return &GORMListRepository{
		db: db,
	}
}

// GetAll retrieves all lists with their memberships preloaded.
func (r *GORMListRepository) GetAll() ([]models.List, error) {
	var lists []models.List
	if err := r.db.Preload("Pokemon").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to get all lists: %w", err)
	}
	return lists, nil
}

// GetByID retrieves a single list by its ID with memberships preloaded.
func (r *GORMListRepository) GetByID(id uint) (*models.List, error) {
	var list models.List
	if err := r.db.Preload("Pokemon").First(&list, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("list with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get list by ID %d: %w", id, err)
	}
	return &list, nil
}

// Create persists a new list.
func (r *GORMListRepository) Create(list *models.List) error {
	if err := r.db.Create(list).Error; err != nil {
		return fmt.Errorf("failed to create list: %w", err)
	}
	return nil
}

// Update replaces the stored list row. Memberships are left untouched.
func (r *GORMListRepository) Update(list *models.List) error {
	res := r.db.Omit(clause.Associations).Save(list)
	if res.Error != nil {
		return fmt.Errorf("failed to update list: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("list with ID %d: %w", list.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a list and its membership rows atomically.
func (r *GORMListRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ListPokemon{}, "list_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.List{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("list with ID %d: %w", id, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete list %d: %w", id, err)
	}
	return nil
}

// AddPokemon inserts a membership row unless the pair already exists. The
// unique index on (list_id, pokemon_id) backstops concurrent inserts.
func (r *GORMListRepository) AddPokemon(listID, pokemonID uint) (*models.ListPokemon, error) {
	var membership models.ListPokemon
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ListPokemon
		err := tx.First(&existing, "list_id = ? AND pokemon_id = ?", listID, pokemonID).Error
		if err == nil {
			return fmt.Errorf("pokemon %d already in list %d: %w", pokemonID, listID, ErrDuplicate)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		membership = models.ListPokemon{ListID: listID, PokemonID: pokemonID}
		return tx.Create(&membership).Error
	})
	if err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add pokemon %d to list %d: %w", pokemonID, listID, err)
	}
	return &membership, nil
}

// RemovePokemon deletes the membership row for the given pair.
func (r *GORMListRepository) RemovePokemon(listID, pokemonID uint) error {
	res := r.db.Delete(&models.ListPokemon{}, "list_id = ? AND pokemon_id = ?", listID, pokemonID)
	if res.Error != nil {
		return fmt.Errorf("failed to remove pokemon %d from list %d: %w", pokemonID, listID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("pokemon %d is not in list %d: %w", pokemonID, listID, ErrNotFound)
	}
	return nil
}
