package repositories

import (
	"errors"
	"fmt"

	"pokedex/internal/models"

	"gorm.io/gorm"
)

// GORMImageRepository is a GORM implementation of ImageRepository.
type GORMImageRepository struct {
	db *gorm.DB
}

// NewGORMImageRepository creates a new instance of GORMImageRepository.
func NewGORMImageRepository(db *gorm.DB) *GORMImageRepository {
	return &GORMImageRepository{
		db: db,
	}
}

// GetAll retrieves all images.
func (r *GORMImageRepository) GetAll() ([]models.Image, error) {
	var images []models.Image
	if err := r.db.Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to get all images: %w", err)
	}
	return images, nil
}

// GetByID retrieves a single image by its ID.
func (r *GORMImageRepository) GetByID(id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("image with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get image by ID %d: %w", id, err)
	}
	return &image, nil
}

// GetByPokemon retrieves all images attached to one Pokemon.
func (r *GORMImageRepository) GetByPokemon(pokemonID uint) ([]models.Image, error) {
	var images []models.Image
	if err := r.db.Find(&images, "pokemon_id = ?", pokemonID).Error; err != nil {
		return nil, fmt.Errorf("failed to get images for pokemon %d: %w", pokemonID, err)
	}
	return images, nil
}

// Create persists a new image.
func (r *GORMImageRepository) Create(image *models.Image) error {
	if err := r.db.Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

// Update replaces the stored image row.
func (r *GORMImageRepository) Update(image *models.Image) error {
	res := r.db.Save(image)
	if res.Error != nil {
		return fmt.Errorf("failed to update image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("image with ID %d: %w", image.ID, ErrNotFound)
	}
	return nil
}

// Delete removes an image row. The file behind the URL is external and is
// deliberately left alone.
func (r *GORMImageRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Image{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete image: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("image with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
