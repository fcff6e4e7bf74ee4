package recipe

import (
	"RecipeHub-Backend/domain"
	"RecipeHub-Backend/entities"
	"RecipeHub-Backend/internal/utils/storage"
	"RecipeHub-Backend/pkg/ownership"
	"RecipeHub-Backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.UpsertRecipeRequest, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpsertRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, page, limit int, viewerID string) (domain.RecipeListResponse, error)
		GetUserRecipes(ctx context.Context, userID string, page, limit int) (domain.RecipeListResponse, error)
		UploadRecipeImage(ctx context.Context, recipeID string, file *multipart.FileHeader, userID string) (string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		userService      user.UserService
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, userService user.UserService, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		userService:      userService,
		s3:               s3,
	}
}

// validateRecipeFields applies the field rules shared by create and update.
// CookingTime arrives as form text and is returned parsed.
func validateRecipeFields(req domain.UpsertRecipeRequest) (*int, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Ingredients) == "" || strings.TrimSpace(req.Instructions) == "" {
		return nil, domain.ErrRecipeFieldsRequired
	}
	if titleLen := utf8.RuneCountInString(title); titleLen < 3 || titleLen > 200 {
		return nil, domain.ErrTitleLength
	}

	if req.Difficulty != "" {
		valid := false
		for _, d := range domain.RecipeDifficulties {
			if req.Difficulty == d {
				valid = true
				break
			}
		}
		if !valid {
			return nil, domain.ErrInvalidDifficulty
		}
	}

	var cookingTime *int
	if strings.TrimSpace(req.CookingTime) != "" {
		minutes, err := strconv.Atoi(strings.TrimSpace(req.CookingTime))
		if err != nil || minutes <= 0 {
			return nil, domain.ErrInvalidCookingTime
		}
		cookingTime = &minutes
	}

	return cookingTime, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.UpsertRecipeRequest, userID string) (domain.RecipeResponse, error) {
	// A recipe always carries an author profile; provision one lazily if the
	// account was created without a username.
	author, err := s.userService.EnsureProfile(ctx, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	cookingTime, err := validateRecipeFields(req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:           uuid.New(),
		UserID:       author.ID,
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Ingredients:  strings.TrimSpace(req.Ingredients),
		Instructions: strings.TrimSpace(req.Instructions),
		CookingTime:  cookingTime,
		Difficulty:   req.Difficulty,
		Category:     strings.TrimSpace(req.Category),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.User = author
	return s.toResponse(ctx, recipe, userID), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpsertRecipeRequest, userID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	if !ownership.IsOwner(userID, recipe.UserID.String()) {
		return domain.RecipeResponse{}, domain.ErrNotRecipeOwnerUpdate
	}

	cookingTime, err := validateRecipeFields(req)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.Title = strings.TrimSpace(req.Title)
	recipe.Description = strings.TrimSpace(req.Description)
	recipe.Ingredients = strings.TrimSpace(req.Ingredients)
	recipe.Instructions = strings.TrimSpace(req.Instructions)
	recipe.CookingTime = cookingTime
	recipe.Difficulty = req.Difficulty
	recipe.Category = strings.TrimSpace(req.Category)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toResponse(ctx, recipe, userID), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if !ownership.IsOwner(userID, recipe.UserID.String()) {
		return domain.ErrNotRecipeOwnerDelete
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return s.toResponse(ctx, recipe, viewerID), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int, viewerID string) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, s.toResponse(ctx, recipe, viewerID))
	}

	return domain.RecipeListResponse{Recipes: result, Total: count}, nil
}

func (s *recipeService) GetUserRecipes(ctx context.Context, userID string, page, limit int) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipesByUser(ctx, userID, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, s.toResponse(ctx, recipe, userID))
	}

	return domain.RecipeListResponse{Recipes: result, Total: count}, nil
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, file *multipart.FileHeader, userID string) (string, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrRecipeNotFound
		}
		return "", err
	}

	if !ownership.IsOwner(userID, recipe.UserID.String()) {
		return "", domain.ErrNotRecipeOwnerUpdate
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("recipe-%s", recipe.ID.String()),
		file,
		"recipes",
		storage.AllowImage...,
	)
	if err != nil {
		return "", err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return "", err
	}

	return recipe.ImageURL, nil
}

// toResponse decorates a recipe with author info, social counts, and the
// viewer's liked flag. Count reads degrade to zero rather than failing the
// whole response.
func (s *recipeService) toResponse(ctx context.Context, recipe *entities.Recipe, viewerID string) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:           recipe.ID.String(),
		UserID:       recipe.UserID.String(),
		Title:        recipe.Title,
		Description:  recipe.Description,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		CookingTime:  recipe.CookingTime,
		Difficulty:   recipe.Difficulty,
		Category:     recipe.Category,
		ImageURL:     recipe.ImageURL,
		CreatedAt:    recipe.CreatedAt,
	}
	if recipe.User != nil {
		res.Author = &domain.Author{
			ID:       recipe.User.ID.String(),
			Username: recipe.User.Username,
			FullName: recipe.User.FullName,
		}
	}

	recipeID := recipe.ID.String()
	if count, err := s.recipeRepository.CountLikes(ctx, recipeID); err == nil && count > 0 {
		res.LikeCount = count
	}
	if count, err := s.recipeRepository.CountComments(ctx, recipeID); err == nil && count > 0 {
		res.CommentCount = count
	}
	if viewerID != "" {
		if liked, err := s.recipeRepository.HasLike(ctx, viewerID, recipeID); err == nil {
			res.Liked = liked
		}
	}
	return res
}
