package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessGetRecipe     = "success get recipe detail"
	MessageSuccessCreateRecipe  = "recipe created successfully"
	MessageSuccessUpdateRecipe  = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessUploadImage   = "recipe image uploaded successfully"
	MessageSuccessGetLikedFeed  = "success get liked recipes"
	MessageSuccessGetOwnRecipes = "success get own recipes"

	MessageFailedGetRecipes   = "failed to get recipes"
	MessageFailedGetRecipe    = "failed to get recipe detail"
	MessageFailedCreateRecipe = "failed to create recipe"
	MessageFailedUpdateRecipe = "failed to update recipe"
	MessageFailedDeleteRecipe = "failed to delete recipe"
	MessageFailedUploadImage  = "failed to upload recipe image"

	ErrRecipeNotFound       = errors.New("Recipe not found")
	ErrRecipeFieldsRequired = errors.New("Title, ingredients, and instructions are required")
	ErrTitleLength          = errors.New("Title must be between 3 and 200 characters")
	ErrInvalidDifficulty    = errors.New("Invalid difficulty level")
	ErrInvalidCookingTime   = errors.New("Cooking time must be a positive number of minutes")
	ErrNotRecipeOwnerUpdate = errors.New("You can only update your own recipes")
	ErrNotRecipeOwnerDelete = errors.New("You can only delete your own recipes")
)

// Difficulty levels a recipe may carry; empty means unspecified.
var RecipeDifficulties = []string{"easy", "medium", "hard"}

type (
	// UpsertRecipeRequest carries recipe fields as they arrive from the form;
	// cooking time comes in as a string and is parsed by the service.
	UpsertRecipeRequest struct {
		Title        string `json:"title" validate:"required"`
		Description  string `json:"description,omitempty"`
		Ingredients  string `json:"ingredients" validate:"required"`
		Instructions string `json:"instructions" validate:"required"`
		CookingTime  string `json:"cooking_time,omitempty"`
		Difficulty   string `json:"difficulty,omitempty"`
		Category     string `json:"category,omitempty"`
	}

	Author struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		FullName string `json:"full_name,omitempty"`
		Email    string `json:"email,omitempty"`
	}

	RecipeResponse struct {
		ID           string    `json:"id"`
		UserID       string    `json:"user_id"`
		Title        string    `json:"title"`
		Description  string    `json:"description,omitempty"`
		Ingredients  string    `json:"ingredients"`
		Instructions string    `json:"instructions"`
		CookingTime  *int      `json:"cooking_time,omitempty"`
		Difficulty   string    `json:"difficulty,omitempty"`
		Category     string    `json:"category,omitempty"`
		ImageURL     string    `json:"image_url,omitempty"`
		CreatedAt    time.Time `json:"created_at"`
		Author       *Author   `json:"author,omitempty"`
		LikeCount    int64     `json:"like_count"`
		CommentCount int64     `json:"comment_count"`
		Liked        bool      `json:"liked"`
	}

	RecipeListResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Total   int64            `json:"total"`
	}
)
