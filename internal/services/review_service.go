package services

import (
	"pokedex/internal/models"
	"pokedex/internal/repositories"
)

// ReviewService handles business logic for Pokemon reviews.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	pokemonRepo repositories.PokemonRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, pokemonRepo repositories.PokemonRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		pokemonRepo: pokemonRepo,
	}
}

// GetReviewsByPokemon retrieves all reviews for one Pokemon. An unknown
// Pokemon yields an empty slice, not an error.
func (s *ReviewService) GetReviewsByPokemon(pokemonID uint) ([]models.Review, error) {
	return s.reviewRepo.GetByPokemon(pokemonID)
}

// GetReviewByID retrieves a single review.
func (s *ReviewService) GetReviewByID(id uint) (*models.Review, error) {
	return s.reviewRepo.GetByID(id)
}

// CreateReview adds a review for an existing Pokemon, owned by the acting
// user. A user may review the same Pokemon more than once.
func (s *ReviewService) CreateReview(actingUserID, pokemonID uint, input models.ReviewInput) (*models.Review, error) {
	if _, err := s.pokemonRepo.GetByID(pokemonID); err != nil {
		return nil, err
	}

	review := &models.Review{
		Rating:    input.Rating,
		Title:     input.Title,
		Body:      input.Body,
		PokemonID: pokemonID,
		UserID:    actingUserID,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview replaces the rating, title and body of a review. Only the
// owner may update; updated_at advances on success.
func (s *ReviewService) UpdateReview(actingUserID, id uint, input models.ReviewInput) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(review.UserID, actingUserID); err != nil {
		return nil, err
	}

	review.Rating = input.Rating
	review.Title = input.Title
	review.Body = input.Body

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. Only the owner may delete.
func (s *ReviewService) DeleteReview(actingUserID, id uint) error {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(review.UserID, actingUserID); err != nil {
		return err
	}
	return s.reviewRepo.Delete(id)
}
