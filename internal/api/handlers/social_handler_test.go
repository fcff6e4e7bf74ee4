package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"RecipeHub-Backend/entities"
	"RecipeHub-Backend/internal/utils"
	"RecipeHub-Backend/pkg/social"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Recipe{},
		&entities.Like{},
		&entities.Comment{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// asUser stands in for the auth middleware and pins the request principal.
func asUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		c.Locals("role", "user")
		return c.Next()
	}
}

func setupSocialApp(t *testing.T, db *gorm.DB, userID string) *fiber.App {
	utils.InitValidator()
	service := social.NewSocialService(social.NewSocialRepository(db))
	handler := NewSocialHandler(service, utils.Validate)

	app := fiber.New()
	app.Post("/api/v1/recipes/:id/comments", asUser(userID), handler.CreateComment)
	app.Get("/api/v1/recipes/:id/comments", handler.GetRecipeComments)
	app.Put("/api/v1/comments/:id", asUser(userID), handler.UpdateComment)
	app.Post("/api/v1/recipes/:id/like", asUser(userID), handler.ToggleLike)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	var payload map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&payload))
	return payload
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (map[string]any, int) {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	return decodeBody(t, resp.Body), resp.StatusCode
}

func TestCreateCommentEndpoint(t *testing.T) {
	db := setupTestDB(t)

	alice := &entities.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	require.NoError(t, db.Create(alice).Error)
	recipe := &entities.Recipe{
		ID: uuid.New(), UserID: alice.ID,
		Title: "Sourdough", Ingredients: "flour", Instructions: "bake",
	}
	require.NoError(t, db.Create(recipe).Error)

	app := setupSocialApp(t, db, alice.ID.String())

	body, status := postJSON(t, app, "/api/v1/recipes/"+recipe.ID.String()+"/comments",
		map[string]string{"content": "Great recipe!"})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["status"])

	data := body["data"].(map[string]any)
	assert.Equal(t, "Great recipe!", data["content"])
	assert.Equal(t, alice.ID.String(), data["user_id"])
}

func TestCreateCommentEndpointRejectsEmpty(t *testing.T) {
	db := setupTestDB(t)

	alice := &entities.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	require.NoError(t, db.Create(alice).Error)
	recipe := &entities.Recipe{
		ID: uuid.New(), UserID: alice.ID,
		Title: "Sourdough", Ingredients: "flour", Instructions: "bake",
	}
	require.NoError(t, db.Create(recipe).Error)

	app := setupSocialApp(t, db, alice.ID.String())

	body, status := postJSON(t, app, "/api/v1/recipes/"+recipe.ID.String()+"/comments",
		map[string]string{"content": "   "})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["status"])
	assert.Equal(t, "Comment cannot be empty", body["error"])
}

func TestUpdateCommentEndpointForbiddenForNonOwner(t *testing.T) {
	db := setupTestDB(t)

	alice := &entities.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	bob := &entities.User{ID: uuid.New(), Email: "bob@example.com", Username: "bob"}
	require.NoError(t, db.Create(alice).Error)
	require.NoError(t, db.Create(bob).Error)
	recipe := &entities.Recipe{
		ID: uuid.New(), UserID: alice.ID,
		Title: "Sourdough", Ingredients: "flour", Instructions: "bake",
	}
	require.NoError(t, db.Create(recipe).Error)
	comment := &entities.Comment{
		ID: uuid.New().String(), UserID: alice.ID, RecipeID: recipe.ID, Content: "Great recipe!",
	}
	require.NoError(t, db.Create(comment).Error)

	app := setupSocialApp(t, db, bob.ID.String())

	raw, _ := json.Marshal(map[string]string{"content": "edited"})
	req := httptest.NewRequest("PUT", "/api/v1/comments/"+comment.ID, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "You can only update your own comments", body["error"])

	var stored entities.Comment
	require.NoError(t, db.First(&stored, "id = ?", comment.ID).Error)
	assert.Equal(t, "Great recipe!", stored.Content)
}

func TestGetCommentsEndpointDegradesOnStoreFailure(t *testing.T) {
	db := setupTestDB(t)

	alice := &entities.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	require.NoError(t, db.Create(alice).Error)
	recipe := &entities.Recipe{
		ID: uuid.New(), UserID: alice.ID,
		Title: "Sourdough", Ingredients: "flour", Instructions: "bake",
	}
	require.NoError(t, db.Create(recipe).Error)

	app := setupSocialApp(t, db, alice.ID.String())
	require.NoError(t, db.Migrator().DropTable(&entities.Comment{}))

	req := httptest.NewRequest("GET", "/api/v1/recipes/"+recipe.ID.String()+"/comments", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	// the page still renders: empty listing, error marker attached
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["status"])
	assert.NotEmpty(t, body["error"])

	data := body["data"].(map[string]any)
	assert.Empty(t, data["comments"])
}

func TestToggleLikeEndpoint(t *testing.T) {
	db := setupTestDB(t)

	alice := &entities.User{ID: uuid.New(), Email: "alice@example.com", Username: "alice"}
	require.NoError(t, db.Create(alice).Error)
	recipe := &entities.Recipe{
		ID: uuid.New(), UserID: alice.ID,
		Title: "Sourdough", Ingredients: "flour", Instructions: "bake",
	}
	require.NoError(t, db.Create(recipe).Error)

	app := setupSocialApp(t, db, alice.ID.String())
	path := "/api/v1/recipes/" + recipe.ID.String() + "/like"

	body, status := postJSON(t, app, path, nil)
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, true, data["liked"])
	assert.Equal(t, float64(1), data["count"])

	body, status = postJSON(t, app, path, nil)
	require.Equal(t, fiber.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Equal(t, false, data["liked"])
	assert.Equal(t, float64(0), data["count"])
}
