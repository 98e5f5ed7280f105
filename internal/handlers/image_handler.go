package handlers

import (
	"log"

	"pokedex/internal/models"
	"pokedex/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ImageHandler handles HTTP requests for Pokemon images.
type ImageHandler struct {
	service  *services.ImageService
	validate *validator.Validate
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(service *services.ImageService) *ImageHandler {
	return &ImageHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the image routes.
func (h *ImageHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	imageRoutes := router.Group("/images")
	imageRoutes.Get("/", h.HandleGetAllImages)
	imageRoutes.Get("/pokemon/:pokemonId", h.HandleGetPokemonImages)
	imageRoutes.Post("/pokemon/:pokemonId", auth, h.HandleCreateImage)
	imageRoutes.Get("/:id", h.HandleGetImageByID)
	imageRoutes.Patch("/:id", auth, h.HandleUpdateImage)
	imageRoutes.Delete("/:id", auth, h.HandleDeleteImage)
}

// HandleGetAllImages lists every image.
func (h *ImageHandler) HandleGetAllImages(c *fiber.Ctx) error {
	images, err := h.service.GetAllImages()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"images": images})
}

// HandleGetImageByID retrieves one image.
func (h *ImageHandler) HandleGetImageByID(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	image, err := h.service.GetImageByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(image)
}

// HandleGetPokemonImages lists the images attached to one Pokemon.
func (h *ImageHandler) HandleGetPokemonImages(c *fiber.Ctx) error {
	pokemonID, err := paramID(c, "pokemonId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}
	images, err := h.service.GetImagesByPokemon(pokemonID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"images": images})
}

// HandleCreateImage attaches a new image to a Pokemon.
func (h *ImageHandler) HandleCreateImage(c *fiber.Ctx) error {
	pokemonID, err := paramID(c, "pokemonId")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var input models.ImageInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create image request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	image, err := h.service.CreateImage(actingUserID(c), pokemonID, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// HandleUpdateImage replaces the URL and caption of an image the acting
// user owns.
func (h *ImageHandler) HandleUpdateImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	var input models.ImageInput
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing update image request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": validationMessages(err),
		})
	}

	image, err := h.service.UpdateImage(actingUserID(c), id, input)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(image)
}

// HandleDeleteImage removes an image record the acting user owns. The
// externally hosted file stays where it is.
func (h *ImageHandler) HandleDeleteImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	}

	if err := h.service.DeleteImage(actingUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Image deleted successfully"})
}
