package handlers

import (
	"RecipeHub-Backend/domain"
	"RecipeHub-Backend/internal/api/presenters"
	"RecipeHub-Backend/pkg/social"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SocialHandler interface {
		CreateComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
		GetRecipeComments(c *fiber.Ctx) error
		ToggleLike(c *fiber.Ctx) error
		GetRecipeLikes(c *fiber.Ctx) error
		GetLikedRecipes(c *fiber.Ctx) error
	}

	socialHandler struct {
		socialService social.SocialService
		validator     *validator.Validate
	}
)

func NewSocialHandler(socialService social.SocialService, validator *validator.Validate) SocialHandler {
	return &socialHandler{
		socialService: socialService,
		validator:     validator,
	}
}

func (h *socialHandler) CreateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.CommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.socialService.CreateComment(c.Context(), recipeID, req.Content, userID)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCreateComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateComment)
}

func (h *socialHandler) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")
	req := new(domain.CommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.socialService.UpdateComment(c.Context(), commentID, req.Content, userID)
	if err != nil {
		switch err {
		case domain.ErrCommentNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateComment, err)
		case domain.ErrNotCommentOwnerUpdate:
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedUpdateComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *socialHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	if err := h.socialService.DeleteComment(c.Context(), commentID, userID); err != nil {
		switch err {
		case domain.ErrCommentNotFound:
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteComment, err)
		case domain.ErrNotCommentOwnerDelete:
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedDeleteComment, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}

func (h *socialHandler) GetRecipeComments(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	comments, err := h.socialService.GetRecipeComments(c.Context(), recipeID)
	if err != nil {
		// Read failures degrade to an empty listing with the error attached.
		return presenters.DegradedResponse(c, domain.CommentListResponse{
			Comments: []domain.CommentResponse{},
		}, fiber.StatusOK, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, domain.CommentListResponse{
		Comments: comments,
		Count:    int64(len(comments)),
	}, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *socialHandler) ToggleLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	res, err := h.socialService.ToggleLike(c.Context(), recipeID, userID)
	if err != nil {
		if err == domain.ErrRecipeNotFound {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedToggleLike, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedToggleLike, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessToggleLike)
}

func (h *socialHandler) GetRecipeLikes(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	likes, err := h.socialService.GetRecipeLikes(c.Context(), recipeID)
	if err != nil {
		return presenters.DegradedResponse(c, domain.LikeListResponse{
			Likes: []domain.LikeResponse{},
		}, fiber.StatusOK, domain.MessageFailedGetLikes, err)
	}

	return presenters.SuccessResponse(c, domain.LikeListResponse{
		Likes: likes,
		Count: int64(len(likes)),
	}, fiber.StatusOK, domain.MessageSuccessGetLikes)
}

func (h *socialHandler) GetLikedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	recipes, err := h.socialService.GetUserLikedRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetLikes, err)
	}

	return presenters.SuccessResponse(c, domain.RecipeListResponse{
		Recipes: recipes,
		Total:   int64(len(recipes)),
	}, fiber.StatusOK, domain.MessageSuccessGetLikedFeed)
}
