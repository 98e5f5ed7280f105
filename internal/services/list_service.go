package services

import (
	"pokedex/internal/models"
	"pokedex/internal/repositories"
)

// ListService handles business logic for user-curated lists.
type ListService struct {
	listRepo    repositories.ListRepository
	pokemonRepo repositories.PokemonRepository
}

// NewListService creates a new ListService.
func NewListService(listRepo repositories.ListRepository, pokemonRepo repositories.PokemonRepository) *ListService {
	return &ListService{
		listRepo:    listRepo,
		pokemonRepo: pokemonRepo,
	}
}

// GetAllLists retrieves all lists with their memberships.
func (s *ListService) GetAllLists() ([]models.List, error) {
	return s.listRepo.GetAll()
}

// GetListByID retrieves a single list.
func (s *ListService) GetListByID(id uint) (*models.List, error) {
	return s.listRepo.GetByID(id)
}

// CreateList persists a new list owned by the acting user.
func (s *ListService) CreateList(actingUserID uint, input models.ListInput) (*models.List, error) {
	list := &models.List{
		Name:        input.Name,
		Description: input.Description,
		UserID:      actingUserID,
	}
	if err := s.listRepo.Create(list); err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateList replaces the name and description of a list. Only the owner
// may update.
func (s *ListService) UpdateList(actingUserID, id uint, input models.ListInput) (*models.List, error) {
	list, err := s.listRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(list.UserID, actingUserID); err != nil {
		return nil, err
	}

	list.Name = input.Name
	list.Description = input.Description

	if err := s.listRepo.Update(list); err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteList removes a list and its membership rows. Only the owner may
// delete.
func (s *ListService) DeleteList(actingUserID, id uint) error {
	list, err := s.listRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(list.UserID, actingUserID); err != nil {
		return err
	}
	return s.listRepo.Delete(id)
}

// AddPokemonToList links an existing Pokemon to a list the acting user
// owns. Linking the same pair twice fails with ErrConflict.
func (s *ListService) AddPokemonToList(actingUserID, listID, pokemonID uint) (*models.ListPokemon, error) {
	list, err := s.listRepo.GetByID(listID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(list.UserID, actingUserID); err != nil {
		return nil, err
	}
	if _, err := s.pokemonRepo.GetByID(pokemonID); err != nil {
		return nil, err
	}
	return s.listRepo.AddPokemon(listID, pokemonID)
}

// RemovePokemonFromList unlinks a Pokemon from a list the acting user
// owns. A missing membership fails with ErrNotFound.
func (s *ListService) RemovePokemonFromList(actingUserID, listID, pokemonID uint) error {
	list, err := s.listRepo.GetByID(listID)
	if err != nil {
		return err
	}
	if err := requireOwner(list.UserID, actingUserID); err != nil {
		return err
	}
	return s.listRepo.RemovePokemon(listID, pokemonID)
}
