package social

import (
	"RecipeHub-Backend/entities"
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SocialRepository interface {
		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)
		UpdateCommentContent(ctx context.Context, id string, content string) (*entities.Comment, error)
		DeleteComment(ctx context.Context, id string) error
		GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error)
		CountComments(ctx context.Context, recipeID string) (int64, error)

		GetLike(ctx context.Context, userID, recipeID string) (*entities.Like, error)
		CreateLike(ctx context.Context, like *entities.Like) error
		DeleteLike(ctx context.Context, id uuid.UUID) error
		CountLikes(ctx context.Context, recipeID string) (int64, error)
		GetLikesByRecipe(ctx context.Context, recipeID string) ([]*entities.Like, error)
		GetLikesByUser(ctx context.Context, userID string) ([]*entities.Like, error)

		RecipeExists(ctx context.Context, recipeID string) (bool, error)
		GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
	}

	socialRepository struct {
		db *gorm.DB
	}
)

func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

// CanonicalID normalizes a comment identifier once, at the store boundary.
// Legacy rows carry numeric ids, newer ones UUID strings; both are stored as
// text, so a trimmed string lookup resolves either representation.
func CanonicalID(id string) string {
	return strings.TrimSpace(id)
}

func (r *socialRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *socialRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).
		Where("id = ?", CanonicalID(id)).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *socialRepository) UpdateCommentContent(ctx context.Context, id string, content string) (*entities.Comment, error) {
	canonical := CanonicalID(id)
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("id = ?", canonical).
		Update("content", content).Error; err != nil {
		return nil, err
	}
	return r.GetCommentByID(ctx, canonical)
}

func (r *socialRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", CanonicalID(id)).
		Delete(&entities.Comment{}).Error
}

func (r *socialRepository) GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *socialRepository) CountComments(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *socialRepository) GetLike(ctx context.Context, userID, recipeID string) (*entities.Like, error) {
	var like entities.Like
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *socialRepository) CreateLike(ctx context.Context, like *entities.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *socialRepository) DeleteLike(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.Like{}).Error
}

func (r *socialRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Like{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *socialRepository) GetLikesByRecipe(ctx context.Context, recipeID string) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *socialRepository) GetLikesByUser(ctx context.Context, userID string) ([]*entities.Like, error) {
	var likes []*entities.Like
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *socialRepository) RecipeExists(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *socialRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("id IN ?", ids).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
