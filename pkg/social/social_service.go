package social

import (
	"RecipeHub-Backend/domain"
	"RecipeHub-Backend/entities"
	"RecipeHub-Backend/pkg/ownership"
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SocialService interface {
		CreateComment(ctx context.Context, recipeID, content, userID string) (domain.CommentResponse, error)
		UpdateComment(ctx context.Context, commentID, content, userID string) (domain.CommentResponse, error)
		DeleteComment(ctx context.Context, commentID, userID string) error
		GetRecipeComments(ctx context.Context, recipeID string) ([]domain.CommentResponse, error)
		GetCommentCount(ctx context.Context, recipeID string) (int64, error)

		ToggleLike(ctx context.Context, recipeID, userID string) (domain.ToggleLikeResponse, error)
		GetLikeCount(ctx context.Context, recipeID string) (int64, error)
		HasUserLiked(ctx context.Context, recipeID, userID string) (bool, error)
		GetRecipeLikes(ctx context.Context, recipeID string) ([]domain.LikeResponse, error)
		GetUserLikedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
	}

	socialService struct {
		socialRepository SocialRepository
	}
)

func NewSocialService(socialRepository SocialRepository) SocialService {
	return &socialService{socialRepository: socialRepository}
}

func validateCommentContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", domain.ErrCommentEmpty
	}
	if utf8.RuneCountInString(trimmed) > domain.MaxCommentLength {
		return "", domain.ErrCommentTooLong
	}
	return trimmed, nil
}

func (s *socialService) CreateComment(ctx context.Context, recipeID, content, userID string) (domain.CommentResponse, error) {
	trimmed, err := validateCommentContent(content)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	exists, err := s.socialRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return domain.CommentResponse{}, err
	}
	if !exists {
		return domain.CommentResponse{}, domain.ErrRecipeNotFound
	}

	comment := &entities.Comment{
		ID:       uuid.New().String(),
		UserID:   userUUID,
		RecipeID: recipeUUID,
		Content:  trimmed,
	}

	if err := s.socialRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(comment), nil
}

func (s *socialService) UpdateComment(ctx context.Context, commentID, content, userID string) (domain.CommentResponse, error) {
	trimmed, err := validateCommentContent(content)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	comment, err := s.socialRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrCommentNotFound
		}
		return domain.CommentResponse{}, err
	}

	ownerID := comment.UserID.String()
	if !ownership.ValidID(userID) || !ownership.ValidID(ownerID) {
		return domain.CommentResponse{}, domain.ErrInvalidUserInfo
	}
	if !ownership.IsOwner(userID, ownerID) {
		return domain.CommentResponse{}, domain.ErrNotCommentOwnerUpdate
	}

	updated, err := s.socialRepository.UpdateCommentContent(ctx, comment.ID, trimmed)
	if err != nil {
		return domain.CommentResponse{}, err
	}

	return toCommentResponse(updated), nil
}

func (s *socialService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.socialRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	ownerID := comment.UserID.String()
	if !ownership.ValidID(userID) || !ownership.ValidID(ownerID) {
		return domain.ErrInvalidUserInfo
	}
	if !ownership.IsOwner(userID, ownerID) {
		return domain.ErrNotCommentOwnerDelete
	}

	return s.socialRepository.DeleteComment(ctx, comment.ID)
}

func (s *socialService) GetRecipeComments(ctx context.Context, recipeID string) ([]domain.CommentResponse, error) {
	comments, err := s.socialRepository.GetCommentsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		result = append(result, toCommentResponse(comment))
	}
	return result, nil
}

// GetCommentCount degrades to zero on a store failure; the error is returned
// alongside so callers can surface it without losing the page.
func (s *socialService) GetCommentCount(ctx context.Context, recipeID string) (int64, error) {
	count, err := s.socialRepository.CountComments(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	return clampCount(count), nil
}

func (s *socialService) ToggleLike(ctx context.Context, recipeID, userID string) (domain.ToggleLikeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ToggleLikeResponse{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, domain.ErrParseUUID
	}

	existing, err := s.socialRepository.GetLike(ctx, userID, recipeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ToggleLikeResponse{}, err
	}

	if existing != nil {
		if err := s.socialRepository.DeleteLike(ctx, existing.ID); err != nil {
			return domain.ToggleLikeResponse{}, err
		}
		return domain.ToggleLikeResponse{
			Liked: false,
			Count: s.recountLikes(ctx, recipeID),
		}, nil
	}

	exists, err := s.socialRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return domain.ToggleLikeResponse{}, err
	}
	if !exists {
		return domain.ToggleLikeResponse{}, domain.ErrRecipeNotFound
	}

	like := &entities.Like{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}
	if err := s.socialRepository.CreateLike(ctx, like); err != nil {
		return domain.ToggleLikeResponse{}, err
	}

	return domain.ToggleLikeResponse{
		Liked: true,
		Count: s.recountLikes(ctx, recipeID),
	}, nil
}

// recountLikes re-reads the count after a mutation instead of trusting local
// arithmetic; a transient inconsistent read clamps to zero.
func (s *socialService) recountLikes(ctx context.Context, recipeID string) int64 {
	count, err := s.socialRepository.CountLikes(ctx, recipeID)
	if err != nil {
		return 0
	}
	return clampCount(count)
}

func (s *socialService) GetLikeCount(ctx context.Context, recipeID string) (int64, error) {
	count, err := s.socialRepository.CountLikes(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	return clampCount(count), nil
}

func (s *socialService) HasUserLiked(ctx context.Context, recipeID, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	_, err := s.socialRepository.GetLike(ctx, userID, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *socialService) GetRecipeLikes(ctx context.Context, recipeID string) ([]domain.LikeResponse, error) {
	likes, err := s.socialRepository.GetLikesByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.LikeResponse, 0, len(likes))
	for _, like := range likes {
		res := domain.LikeResponse{
			ID:        like.ID.String(),
			CreatedAt: like.CreatedAt,
		}
		if like.User != nil {
			res.User = &domain.Author{
				ID:       like.User.ID.String(),
				Username: like.User.Username,
				FullName: like.User.FullName,
			}
		}
		result = append(result, res)
	}
	return result, nil
}

// GetUserLikedRecipes lists the recipes a user has liked, most recent like
// first, with like and comment counts attached.
func (s *socialService) GetUserLikedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	likes, err := s.socialRepository.GetLikesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return []domain.RecipeResponse{}, nil
	}

	ids := make([]uuid.UUID, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.RecipeID)
	}

	recipes, err := s.socialRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entities.Recipe, len(recipes))
	for _, recipe := range recipes {
		byID[recipe.ID] = recipe
	}

	result := make([]domain.RecipeResponse, 0, len(likes))
	for _, like := range likes {
		recipe, ok := byID[like.RecipeID]
		if !ok {
			continue
		}

		res := toRecipeResponse(recipe)
		res.Liked = true
		if count, err := s.socialRepository.CountLikes(ctx, recipe.ID.String()); err == nil {
			res.LikeCount = clampCount(count)
		}
		if count, err := s.socialRepository.CountComments(ctx, recipe.ID.String()); err == nil {
			res.CommentCount = clampCount(count)
		}
		result = append(result, res)
	}
	return result, nil
}

func clampCount(count int64) int64 {
	if count < 0 {
		return 0
	}
	return count
}

func toCommentResponse(comment *entities.Comment) domain.CommentResponse {
	res := domain.CommentResponse{
		ID:        comment.ID,
		Content:   comment.Content,
		UserID:    comment.UserID.String(),
		RecipeID:  comment.RecipeID.String(),
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
	if comment.User != nil {
		res.Author = &domain.Author{
			ID:       comment.User.ID.String(),
			Username: comment.User.Username,
			FullName: comment.User.FullName,
			Email:    comment.User.Email,
		}
	}
	return res
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
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
	return res
}
