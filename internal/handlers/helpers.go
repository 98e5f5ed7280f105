package handlers

import (
	"errors"
	"fmt"
	"log"
	"reflect"
	"strconv"
	"strings"

	"pokedex/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// newValidator builds a validator that reports fields under their JSON
// names, so error bodies read {"errors": {"rating": "..."}} rather than
// exposing Go struct field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationMessages converts validator errors into per-field messages.
func validationMessages(err error) map[string]string {
	messages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["body"] = "Invalid request body"
		return messages
	}
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages[e.Field()] = "This field is required"
		case "email":
			messages[e.Field()] = "Must be a valid email address"
		case "url":
			messages[e.Field()] = "Must be a valid URL"
		case "min":
			if e.Kind() == reflect.String {
				messages[e.Field()] = fmt.Sprintf("Must be at least %s characters long", e.Param())
			} else {
				messages[e.Field()] = fmt.Sprintf("Must be at least %s", e.Param())
			}
		case "max":
			if e.Kind() == reflect.String {
				messages[e.Field()] = fmt.Sprintf("Must be at most %s characters long", e.Param())
			} else {
				messages[e.Field()] = fmt.Sprintf("Must be at most %s", e.Param())
			}
		default:
			messages[e.Field()] = fmt.Sprintf("Failed on the '%s' rule", e.Tag())
		}
	}
	return messages
}

// respondError maps a service error onto the HTTP error taxonomy.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Not found",
		})
	case errors.Is(err, services.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	case errors.Is(err, services.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Conflict",
		})
	default:
		log.Printf("Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}

// paramID parses a numeric route parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s parameter: %w", name, err)
	}
	return uint(id), nil
}

// actingUserID returns the authenticated user's id stashed by the JWT
// middleware. Routes calling this must be registered behind AuthRequired.
func actingUserID(c *fiber.Ctx) uint {
	return c.Locals("user_id").(uint)
}
