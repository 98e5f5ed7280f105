package handlers

import (
	"errors"
	"log"

	"pokedex/internal/models"
	"pokedex/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ListHandler handles HTTP requests for user-curated lists.
type ListHandler struct {
	service  *services.ListService
	validate *validator.Validate
}

// NewListHandler creates a new ListHandler.
func NewListHandler(service *services.ListService) *ListHandler {
	return &ListHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the list routes.
func (h *ListHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	listRoutes := router.Group("/lists")
	listRoutes.Get("/", h.HandleGetAllLists)
	listRoutes.Post("/", auth, h.HandleCreateList)
	listRoutes.Get("/:id", h.HandleGetListByID)
	listRoutes.Patch("/:id", auth, h.HandleUpdateList)
	listRoutes.Delete("/:id", auth, h.HandleDeleteList)
	listRoutes.Post("/:listId/pokemon/:pokemonId", auth, h.HandleAddPokemonToList)
	listRoutes.Delete("/:listId/pokemon/:pokemonId", auth, h.HandleRemovePokemonFromList)
}

// HandleGetAllLists lists every list with its memberships.
func (h *ListHandler) HandleGetAllLists(c *fiber.Ctx) error {
	lists, err := h.service.GetAllLists()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"lists": lists})
}

// HandleGetListByID retrieves one list.
func (h *ListHandler) HandleGetListByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	list, err := h.service.GetListByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// HandleCreateList creates a list owned by the acting user.
func (h *ListHandler) HandleCreateList(c *fiber.Ctx) error {
	var input models.ListInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create list request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	list, err := h.service.CreateList(actingUserID(c), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(list)
}

// HandleUpdateList replaces the name and description of a list the acting
// user owns.
func (h *ListHandler) HandleUpdateList(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var input models.ListInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update list request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	list, err := h.service.UpdateList(actingUserID(c), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// HandleDeleteList removes a list the acting user owns, cascading to its
// membership rows.
func (h *ListHandler) HandleDeleteList(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	if err := h.service.DeleteList(actingUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "List deleted successfully"})
}

// HandleAddPokemonToList links a Pokemon to a list the acting user owns.
// Linking the same pair twice yields 409.
func (h *ListHandler) HandleAddPokemonToList(c *fiber.Ctx) error {
	listID, err := paramID(c, "listId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	pokemonID, err := paramID(c, "pokemonId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	if _, err := h.service.AddPokemonToList(actingUserID(c), listID, pokemonID); err != nil {
		if errors.Is(err, services.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Pokemon already in list",
			})
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pokemon added to list"})
}

// HandleRemovePokemonFromList unlinks a Pokemon from a list the acting
// user owns.
func (h *ListHandler) HandleRemovePokemonFromList(c *fiber.Ctx) error {
	listID, err := paramID(c, "listId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	pokemonID, err := paramID(c, "pokemonId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	if err := h.service.RemovePokemonFromList(actingUserID(c), listID, pokemonID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pokemon removed from list"})
}
