package services

import (
	"pokedex/internal/models"
	"pokedex/internal/repositories"
)

// ImageService handles business logic for Pokemon images.
type ImageService struct {
	imageRepo   repositories.ImageRepository
	pokemonRepo repositories.PokemonRepository
}

// NewImageService creates a new ImageService.
func NewImageService(imageRepo repositories.ImageRepository, pokemonRepo repositories.PokemonRepository) *ImageService {
	return &ImageService{
		imageRepo:   imageRepo,
		pokemonRepo: pokemonRepo,
	}
}

// GetAllImages retrieves all images.
func (s *ImageService) GetAllImages() ([]models.Image, error) {
	return s.imageRepo.GetAll()
}

// GetImageByID retrieves a single image.
func (s *ImageService) GetImageByID(id uint) (*models.Image, error) {
	return s.imageRepo.GetByID(id)
}

// GetImagesByPokemon retrieves the images attached to one Pokemon. The
// Pokemon itself must exist.
func (s *ImageService) GetImagesByPokemon(pokemonID uint) ([]models.Image, error) {
	if _, err := s.pokemonRepo.GetByID(pokemonID); err != nil {
		return nil, err
	}
	return s.imageRepo.GetByPokemon(pokemonID)
}

// CreateImage attaches a new image to an existing Pokemon, owned by the
// acting user.
func (s *ImageService) CreateImage(actingUserID, pokemonID uint, input models.ImageInput) (*models.Image, error) {
	if _, err := s.pokemonRepo.GetByID(pokemonID); err != nil {
		return nil, err
	}

	image := &models.Image{
		URL:       input.URL,
		Caption:   input.Caption,
		PokemonID: pokemonID,
		UserID:    actingUserID,
	}
	if err := s.imageRepo.Create(image); err != nil {
		return nil, err
	}
	return image, nil
}

// UpdateImage replaces the URL and caption of an image. Only the owner
// may update.
func (s *ImageService) UpdateImage(actingUserID, id uint, input models.ImageInput) (*models.Image, error) {
	image, err := s.imageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(image.UserID, actingUserID); err != nil {
		return nil, err
	}

	image.URL = input.URL
	image.Caption = input.Caption

	if err := s.imageRepo.Update(image); err != nil {
		return nil, err
	}
	return image, nil
}

// DeleteImage removes the database record only. The file the URL points
// at lives on an external host and is intentionally never deleted.
func (s *ImageService) DeleteImage(actingUserID, id uint) error {
	image, err := s.imageRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(image.UserID, actingUserID); err != nil {
		return err
	}
	return s.imageRepo.Delete(id)
}
