package services_test

import (
	"fmt"
	"testing"

	"pokedex/internal/models"
	"pokedex/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_GetReviewsByPokemon(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockPokemonRepo := new(MockPokemonRepository)
	service := services.NewReviewService(mockReviewRepo, mockPokemonRepo)

	expected := []models.Review{
		{ID: 1, PokemonID: 5, UserID: 1, Rating: 5, Title: "Great"},
		{ID: 2, PokemonID: 5, UserID: 2, Rating: 3},
	}

	mockReviewRepo.On("GetByPokemon", uint(5)).Return(expected, nil).Once()

	reviews, err := service.GetReviewsByPokemon(5)
	assert.NoError(t, err)
	assert.Equal(t, expected, reviews)
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewService_CreateReview(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockPokemonRepo := new(MockPokemonRepository)
	service := services.NewReviewService(mockReviewRepo, mockPokemonRepo)

	input := models.ReviewInput{Rating: 4, Title: "ok"}

	// Pokemon exists
	mockPokemonRepo.On("GetByID", uint(5)).Return(&models.Pokemon{ID: 5, Name: "Eevee", Type: "Normal", UserID: 1}, nil).Once()
	mockReviewRepo.On("Create", mock.AnythingOfType("*models.Review")).
		Run(func(args mock.Arguments) {
			review := args.Get(0).(*models.Review)
			review.ID = 11
			assert.Equal(t, uint(2), review.UserID)
			assert.Equal(t, uint(5), review.PokemonID)
		}).Return(nil).Once()

	review, err := service.CreateReview(2, 5, input)
	assert.NoError(t, err)
	assert.Equal(t, uint(11), review.ID)
	mockReviewRepo.AssertExpectations(t)
	mockPokemonRepo.AssertExpectations(t)

	// Unknown pokemon: no review row is created
	mockPokemonRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("pokemon with ID 99: %w", services.ErrNotFound)).Once()

	_, err = service.CreateReview(2, 99, input)
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockReviewRepo.AssertNumberOfCalls(t, "Create", 1)
	mockPokemonRepo.AssertExpectations(t)
}

func TestReviewService_UpdateReview(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockPokemonRepo := new(MockPokemonRepository)
	service := services.NewReviewService(mockReviewRepo, mockPokemonRepo)

	input := models.ReviewInput{Rating: 2, Title: "changed my mind"}

	// Owner may update
	mockReviewRepo.On("GetByID", uint(11)).Return(&models.Review{ID: 11, UserID: 2, PokemonID: 5, Rating: 4}, nil).Once()
	mockReviewRepo.On("Update", mock.AnythingOfType("*models.Review")).Return(nil).Once()

	review, err := service.UpdateReview(2, 11, input)
	assert.NoError(t, err)
	assert.Equal(t, 2, review.Rating)
	assert.Equal(t, "changed my mind", review.Title)
	mockReviewRepo.AssertExpectations(t)

	// Non-owner is rejected
	mockReviewRepo.On("GetByID", uint(11)).Return(&models.Review{ID: 11, UserID: 2, PokemonID: 5, Rating: 4}, nil).Once()

	_, err = service.UpdateReview(3, 11, input)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockReviewRepo.AssertNumberOfCalls(t, "Update", 1)
	mockReviewRepo.AssertExpectations(t)
}

func TestReviewService_DeleteReview(t *testing.T) {
	mockReviewRepo := new(MockReviewRepository)
	mockPokemonRepo := new(MockPokemonRepository)
	service := services.NewReviewService(mockReviewRepo, mockPokemonRepo)

	// Owner may delete
	mockReviewRepo.On("GetByID", uint(11)).Return(&models.Review{ID: 11, UserID: 2, PokemonID: 5, Rating: 4}, nil).Once()
	mockReviewRepo.On("Delete", uint(11)).Return(nil).Once()

	err := service.DeleteReview(2, 11)
	assert.NoError(t, err)
	mockReviewRepo.AssertExpectations(t)

	// Non-owner is rejected
	mockReviewRepo.On("GetByID", uint(11)).Return(&models.Review{ID: 11, UserID: 2, PokemonID: 5, Rating: 4}, nil).Once()

	err = service.DeleteReview(1, 11)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	mockReviewRepo.AssertNumberOfCalls(t, "Delete", 1)
	mockReviewRepo.AssertExpectations(t)
}
