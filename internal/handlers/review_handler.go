package handlers

import (
	"log"

	"pokedex/internal/models"
	"pokedex/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for Pokemon reviews.
type ReviewHandler struct {
	service  *services.ReviewService
	validate *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(service *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	reviewRoutes := router.Group("/reviews")
	reviewRoutes.Get("/pokemon/:pokemonId/reviews", h.HandleGetPokemonReviews)
	reviewRoutes.Post("/pokemon/:pokemonId/reviews", auth, h.HandleCreateReview)
	reviewRoutes.Get("/:id", h.HandleGetReviewByID)
	reviewRoutes.Patch("/:id", auth, h.HandleUpdateReview)
	reviewRoutes.Delete("/:id", auth, h.HandleDeleteReview)
}

// HandleGetPokemonReviews lists the reviews written for one Pokemon.
func (h *ReviewHandler) HandleGetPokemonReviews(c *fiber.Ctx) error {
	pokemonID, err := paramID(c, "pokemonId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	reviews, err := h.service.GetReviewsByPokemon(pokemonID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}

// HandleGetReviewByID retrieves one review.
func (h *ReviewHandler) HandleGetReviewByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	review, err := h.service.GetReviewByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

// HandleCreateReview adds a review for a Pokemon, owned by the acting user.
func (h *ReviewHandler) HandleCreateReview(c *fiber.Ctx) error {
	pokemonID, err := paramID(c, "pokemonId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var input models.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	review, err := h.service.CreateReview(actingUserID(c), pokemonID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(review)
}

// HandleUpdateReview replaces the rating, title and body of a review the
// acting user owns.
func (h *ReviewHandler) HandleUpdateReview(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var input models.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update review request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	review, err := h.service.UpdateReview(actingUserID(c), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(review)
}

// HandleDeleteReview removes a review the acting user owns.
func (h *ReviewHandler) HandleDeleteReview(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	if err := h.service.DeleteReview(actingUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted successfully"})
}
