package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pokedex/internal/handlers"
	"pokedex/internal/middleware"
	"pokedex/internal/models"
	"pokedex/internal/repositories"
	"pokedex/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestApp wires the full API over a fresh in-memory SQLite database.
// Each call gets its own database so tests cannot leak rows into each other.
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Pokemon{},
		&models.Review{},
		&models.List{},
		&models.ListPokemon{},
		&models.Image{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	userRepo := repositories.NewGORMUserRepository(db)
	pokemonRepo := repositories.NewGORMPokemonRepository(db)
	imageRepo := repositories.NewGORMImageRepository(db)
	reviewRepo := repositories.NewGORMReviewRepository(db)
	listRepo := repositories.NewGORMListRepository(db)

	authService := services.NewAuthService(userRepo, "test_secret")
	pokemonService := services.NewPokemonService(pokemonRepo, nil)
	imageService := services.NewImageService(imageRepo, pokemonRepo)
	reviewService := services.NewReviewService(reviewRepo, pokemonRepo)
	listService := services.NewListService(listRepo, pokemonRepo)

	app := fiber.New()
	api := app.Group("/api")
	authRequired := middleware.AuthRequired(authService)

	handlers.NewAuthHandler(authService).RegisterRoutes(api)
	handlers.NewPokemonHandler(pokemonService).RegisterRoutes(api, authRequired)
	handlers.NewImageHandler(imageService).RegisterRoutes(api, authRequired)
	handlers.NewReviewHandler(reviewService).RegisterRoutes(api, authRequired)
	handlers.NewListHandler(listService).RegisterRoutes(api, authRequired)

	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	resp.Body.Close()
	return body
}

// registerAndLogin creates a user and returns a bearer token for them.
func registerAndLogin(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp := doRequest(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "password",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": "password",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)

	token, ok := body["token"].(string)
	if !ok || token == "" {
		t.Fatalf("login did not return a token: %v", body)
	}
	return token
}

func TestAuthFlow(t *testing.T) {
	app := setupTestApp(t)

	// Register
	resp := doRequest(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"username": "ash",
		"email":    "ash@example.com",
		"password": "password",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "ash", user["username"])
	// The password hash must never appear in a response
	_, exposed := user["password"]
	assert.False(t, exposed)

	// Duplicate username
	resp = doRequest(t, app, "POST", "/api/auth/register", "", fiber.Map{
		"username": "ash",
		"email":    "other@example.com",
		"password": "password",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Login with bad password
	resp = doRequest(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": "ash",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Login with good credentials
	resp = doRequest(t, app, "POST", "/api/auth/login", "", fiber.Map{
		"username": "ash",
		"password": "password",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])
}

func TestPublicReadsAndAuthGate(t *testing.T) {
	app := setupTestApp(t)

	// Reads work without a token
	resp := doRequest(t, app, "GET", "/api/pokemon", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Contains(t, body, "pokemon")

	resp = doRequest(t, app, "GET", "/api/lists", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Mutations do not
	resp = doRequest(t, app, "POST", "/api/pokemon", "", fiber.Map{
		"name": "Pikachu",
		"type": "Electric",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Garbage tokens are rejected too
	resp = doRequest(t, app, "POST", "/api/pokemon", "not-a-token", fiber.Map{
		"name": "Pikachu",
		"type": "Electric",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestPokemonCRUDWithImage(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "ash")

	// Create with image_url: exactly one image row appears
	resp := doRequest(t, app, "POST", "/api/pokemon", token, fiber.Map{
		"name":      "Pikachu",
		"type":      "Electric",
		"region":    "Kanto",
		"image_url": "https://example.com/pikachu.png",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	pokemonID := int(body["id"].(float64))
	assert.Equal(t, "Pikachu", body["name"])

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/images/pokemon/%d", pokemonID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	images := body["images"].([]interface{})
	assert.Len(t, images, 1)
	image := images[0].(map[string]interface{})
	assert.Equal(t, "https://example.com/pikachu.png", image["url"])

	// Validation: missing required fields
	resp = doRequest(t, app, "POST", "/api/pokemon", token, fiber.Map{
		"type": "Electric",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body = decodeBody(t, resp)
	fieldErrors := body["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "name")

	// Owner updates
	resp = doRequest(t, app, "PATCH", fmt.Sprintf("/api/pokemon/%d", pokemonID), token, fiber.Map{
		"name": "Raichu",
		"type": "Electric",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, "Raichu", body["name"])

	// Another user cannot update
	otherToken := registerAndLogin(t, app, "misty")
	resp = doRequest(t, app, "PATCH", fmt.Sprintf("/api/pokemon/%d", pokemonID), otherToken, fiber.Map{
		"name": "Stolen",
		"type": "Electric",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Unknown id
	resp = doRequest(t, app, "GET", "/api/pokemon/9999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "GET", "/api/pokemon/abc", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestReviewFlowAndValidation(t *testing.T) {
	app := setupTestApp(t)
	ashToken := registerAndLogin(t, app, "ash")
	mistyToken := registerAndLogin(t, app, "misty")

	resp := doRequest(t, app, "POST", "/api/pokemon", ashToken, fiber.Map{
		"name": "Gengar",
		"type": "Ghost",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	pokemonID := int(decodeBody(t, resp)["id"].(float64))

	// Rating outside 1..5 is rejected with a field error
	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/reviews/pokemon/%d/reviews", pokemonID), mistyToken, fiber.Map{
		"rating": 6,
		"title":  "Too spooky",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	fieldErrors := body["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "rating")

	// A user may review someone else's Pokemon
	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/reviews/pokemon/%d/reviews", pokemonID), mistyToken, fiber.Map{
		"rating": 5,
		"title":  "Spooky friend",
		"body":   "Would catch again.",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	reviewID := int(decodeBody(t, resp)["id"].(float64))

	// Reviews of an unknown Pokemon cannot be created
	resp = doRequest(t, app, "POST", "/api/reviews/pokemon/9999/reviews", mistyToken, fiber.Map{
		"rating": 3,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Only the author may edit the review
	resp = doRequest(t, app, "PATCH", fmt.Sprintf("/api/reviews/%d", reviewID), ashToken, fiber.Map{
		"rating": 1,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "PATCH", fmt.Sprintf("/api/reviews/%d", reviewID), mistyToken, fiber.Map{
		"rating": 4,
		"title":  "Still spooky",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.EqualValues(t, 4, body["rating"])

	// Deleting the Pokemon cascades to its reviews
	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/pokemon/%d", pokemonID), ashToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/reviews/%d", reviewID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/images/pokemon/%d", pokemonID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestListMembership(t *testing.T) {
	app := setupTestApp(t)
	ashToken := registerAndLogin(t, app, "ash")
	mistyToken := registerAndLogin(t, app, "misty")

	resp := doRequest(t, app, "POST", "/api/pokemon", ashToken, fiber.Map{
		"name": "Dragonite",
		"type": "Dragon",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	pokemonID := int(decodeBody(t, resp)["id"].(float64))

	resp = doRequest(t, app, "POST", "/api/lists", ashToken, fiber.Map{
		"name":        "Favorites",
		"description": "The strongest team",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	listID := int(decodeBody(t, resp)["id"].(float64))

	// First add succeeds, second is a conflict
	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID), ashToken, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID), ashToken, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Pokemon already in list", body["error"])

	// Only the list owner may manage memberships
	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID), mistyToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Membership shows up on the list
	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/lists/%d", listID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	memberships := body["pokemon"].([]interface{})
	assert.Len(t, memberships, 1)

	// Remove, then removing again is a 404
	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID), ashToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID), ashToken, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Deleting the list removes its membership rows
	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/lists/%d/pokemon/%d", listID, pokemonID), ashToken, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/lists/%d", listID), ashToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/lists/%d", listID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestImageEndpoints(t *testing.T) {
	app := setupTestApp(t)
	ashToken := registerAndLogin(t, app, "ash")
	mistyToken := registerAndLogin(t, app, "misty")

	resp := doRequest(t, app, "POST", "/api/pokemon", ashToken, fiber.Map{
		"name": "Blastoise",
		"type": "Water",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	pokemonID := int(decodeBody(t, resp)["id"].(float64))

	// Invalid URL is rejected
	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/images/pokemon/%d", pokemonID), mistyToken, fiber.Map{
		"url": "not a url",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody(t, resp)
	fieldErrors := body["errors"].(map[string]interface{})
	assert.Contains(t, fieldErrors, "url")

	// Any authenticated user may attach an image
	resp = doRequest(t, app, "POST", fmt.Sprintf("/api/images/pokemon/%d", pokemonID), mistyToken, fiber.Map{
		"url":     "https://example.com/blastoise.png",
		"caption": "Hydro pump",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	imageID := int(decodeBody(t, resp)["id"].(float64))

	// Only the uploader may delete it
	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/images/%d", imageID), ashToken, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "DELETE", fmt.Sprintf("/api/images/%d", imageID), mistyToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, "GET", fmt.Sprintf("/api/images/%d", imageID), "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
