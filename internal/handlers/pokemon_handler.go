package handlers

import (
	"log"

	"pokedex/internal/models"
	"pokedex/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PokemonHandler handles HTTP requests for catalog entries.
type PokemonHandler struct {
	service  *services.PokemonService
	validate *validator.Validate
}

// NewPokemonHandler creates a new PokemonHandler.
func NewPokemonHandler(service *services.PokemonService) *PokemonHandler {
	return &PokemonHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the pokemon routes. Reads are public; mutations
// sit behind the auth middleware.
func (h *PokemonHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	pokemonRoutes := router.Group("/pokemon")
	pokemonRoutes.Get("/", h.HandleGetAllPokemon)
	pokemonRoutes.Get("/:id", h.HandleGetPokemonByID)
	pokemonRoutes.Post("/", auth, h.HandleCreatePokemon)
	pokemonRoutes.Patch("/:id", auth, h.HandleUpdatePokemon)
	pokemonRoutes.Delete("/:id", auth, h.HandleDeletePokemon)
}

// HandleGetAllPokemon lists every catalog entry with nested records.
func (h *PokemonHandler) HandleGetAllPokemon(c *fiber.Ctx) error {
	pokemon, err := h.service.GetAllPokemon()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"pokemon": pokemon})
}

// HandleGetPokemonByID retrieves one catalog entry.
func (h *PokemonHandler) HandleGetPokemonByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	pokemon, err := h.service.GetPokemonByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pokemon)
}

// HandleCreatePokemon creates a catalog entry owned by the acting user,
// plus an image row when image_url is supplied.
func (h *PokemonHandler) HandleCreatePokemon(c *fiber.Ctx) error {
	var input models.CreatePokemonInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create pokemon request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	pokemon, err := h.service.CreatePokemon(actingUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pokemon)
}

// HandleUpdatePokemon replaces the mutable fields of an entry the acting
// user owns.
func (h *PokemonHandler) HandleUpdatePokemon(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var input models.UpdatePokemonInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update pokemon request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	pokemon, err := h.service.UpdatePokemon(actingUserID(c), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pokemon)
}

// HandleDeletePokemon removes an entry the acting user owns, cascading to
// its reviews, images and list memberships.
func (h *PokemonHandler) HandleDeletePokemon(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	if err := h.service.DeletePokemon(actingUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pokemon deleted successfully"})
}
