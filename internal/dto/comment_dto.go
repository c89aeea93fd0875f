package dto

import (
	"time"

	"github.com/friendfinder/backend/internal/models"
)

type CreateCommentRequest struct {
	Text string `json:"text"`
}

type CommentResponse struct {
	ID          uint         `json:"id"`
	PostID      uint         `json:"post_id"`
	Text        string       `json:"text"`
	CommentedAt time.Time    `json:"commented_at"`
	User        UserResponse `json:"user"`
}

func NewCommentResponse(c *models.Comment) CommentResponse {
	return CommentResponse{
		ID:          c.ID,
		PostID:      c.PostID,
		Text:        c.Text,
		CommentedAt: c.CommentedAt,
		User:        NewUserResponse(&c.User),
	}
}
