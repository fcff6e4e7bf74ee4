package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateComment = "comment created successfully"
	MessageSuccessUpdateComment = "comment updated successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessToggleLike    = "like toggled successfully"
	MessageSuccessGetLikes      = "success get likes"

	MessageFailedCreateComment = "failed to create comment"
	MessageFailedUpdateComment = "failed to update comment"
	MessageFailedDeleteComment = "failed to delete comment"
	MessageFailedGetComments   = "failed to get comments"
	MessageFailedToggleLike    = "failed to toggle like"
	MessageFailedGetLikes      = "failed to get likes"

	ErrCommentEmpty          = errors.New("Comment cannot be empty")
	ErrCommentTooLong        = errors.New("Comment is too long (maximum 2000 characters)")
	ErrCommentNotFound       = errors.New("Comment not found")
	ErrNotCommentOwnerUpdate = errors.New("You can only update your own comments")
	ErrNotCommentOwnerDelete = errors.New("You can only delete your own comments")
)

// MaxCommentLength bounds comment content after trimming.
const MaxCommentLength = 2000

type (
	CommentRequest struct {
		Content string `json:"content" validate:"required"`
	}

	// CommentResponse keeps Author nil when the writer's profile can no
	// longer be resolved; the comment itself is never dropped for that.
	CommentResponse struct {
		ID        string    `json:"id"`
		Content   string    `json:"content"`
		UserID    string    `json:"user_id"`
		RecipeID  string    `json:"recipe_id"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
		Author    *Author   `json:"author,omitempty"`
	}

	CommentListResponse struct {
		Comments []CommentResponse `json:"comments"`
		Count    int64             `json:"count"`
	}

	ToggleLikeResponse struct {
		Liked bool  `json:"liked"`
		Count int64 `json:"count"`
	}

	LikeResponse struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"created_at"`
		User      *Author   `json:"user,omitempty"`
	}

	LikeListResponse struct {
		Likes []LikeResponse `json:"likes"`
		Count int64          `json:"count"`
	}
)
