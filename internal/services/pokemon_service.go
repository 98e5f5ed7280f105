package services

import (
	"encoding/json"
	"log"

	"pokedex/internal/models"
	"pokedex/internal/repositories"
	"pokedex/pkg/rabbitmq"
)

// PokemonService handles business logic for catalog entries.
type PokemonService struct {
	pokemonRepo repositories.PokemonRepository
	mqClient    *rabbitmq.Client
}

// NewPokemonService creates a new PokemonService. mqClient may be nil;
// catalog events are then skipped.
func NewPokemonService(pokemonRepo repositories.PokemonRepository, mqClient *rabbitmq.Client) *PokemonService {
	return &PokemonService{
		pokemonRepo: pokemonRepo,
		mqClient:    mqClient,
	}
}

// GetAllPokemon retrieves every catalog entry with nested reviews, images
// and list memberships.
func (s *PokemonService) GetAllPokemon() ([]models.Pokemon, error) {
	return s.pokemonRepo.GetAll()
}

// GetPokemonByID retrieves a single catalog entry.
func (s *PokemonService) GetPokemonByID(id uint) (*models.Pokemon, error) {
	return s.pokemonRepo.GetByID(id)
}

// CreatePokemon persists a new entry owned by the acting user. When the
// input carries an image URL, the Image row is created in the same
// transaction; either both rows commit or neither does.
func (s *PokemonService) CreatePokemon(actingUserID uint, input models.CreatePokemonInput) (*models.Pokemon, error) {
	pokemon := &models.Pokemon{
		Name:          input.Name,
		Type:          input.Type,
		TypeSecondary: input.TypeSecondary,
		Region:        input.Region,
		Category:      input.Category,
		Description:   input.Description,
		UserID:        actingUserID,
	}

	var image *models.Image
	if input.ImageURL != "" {
		image = &models.Image{URL: input.ImageURL}
	}

	if err := s.pokemonRepo.Create(pokemon, image); err != nil {
		return nil, err
	}

	s.publishEvent("pokemon.created", pokemon)

	// Reload so the response carries the nested collections, including the
	// image created alongside.
	return s.pokemonRepo.GetByID(pokemon.ID)
}

// UpdatePokemon replaces the mutable fields of an entry. Only the owner
// may update.
func (s *PokemonService) UpdatePokemon(actingUserID, id uint, input models.UpdatePokemonInput) (*models.Pokemon, error) {
	pokemon, err := s.pokemonRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(pokemon.UserID, actingUserID); err != nil {
		return nil, err
	}

	pokemon.Name = input.Name
	pokemon.Type = input.Type
	pokemon.TypeSecondary = input.TypeSecondary
	pokemon.Region = input.Region
	pokemon.Category = input.Category
	pokemon.Description = input.Description

	if err := s.pokemonRepo.Update(pokemon); err != nil {
		return nil, err
	}
	return pokemon, nil
}

// DeletePokemon removes an entry together with all dependent reviews,
// images and list memberships. Only the owner may delete.
func (s *PokemonService) DeletePokemon(actingUserID, id uint) error {
	pokemon, err := s.pokemonRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := requireOwner(pokemon.UserID, actingUserID); err != nil {
		return err
	}

	if err := s.pokemonRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent("pokemon.deleted", pokemon)
	return nil
}

// publishEvent emits a catalog change event. Failures are logged, never
// surfaced: the API result does not depend on the broker.
func (s *PokemonService) publishEvent(routingKey string, pokemon *models.Pokemon) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]interface{}{
		"pokemon_id": pokemon.ID,
		"name":       pokemon.Name,
		"user_id":    pokemon.UserID,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for pokemon %d: %v", routingKey, pokemon.ID, err)
	}
}
