package dto

import (
	"time"

	"github.com/friendfinder/backend/internal/models"
)

type CreatePostRequest struct {
	Description string `json:"description"`
}

type PostResponse struct {
	ID           uint         `json:"id"`
	Description  string       `json:"description"`
	ImageName    string       `json:"image_name,omitempty"`
	VideoName    string       `json:"video_name,omitempty"`
	LikeCount    int          `json:"like_count"`
	DislikeCount int          `json:"dislike_count"`
	PostedAt     time.Time    `json:"posted_at"`
	User         UserResponse `json:"user"`
}

func NewPostResponse(p *models.Post) PostResponse {
	return PostResponse{
		ID:           p.ID,
		Description:  p.Description,
		ImageName:    p.ImageName,
		VideoName:    p.VideoName,
		LikeCount:    p.LikeCount,
		DislikeCount: p.DislikeCount,
		PostedAt:     p.PostedAt,
		User:         NewUserResponse(&p.User),
	}
}

func NewPostResponses(posts []models.Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for i := range posts {
		out = append(out, NewPostResponse(&posts[i]))
	}
	return out
}

type ReactionRequest struct {
	Status models.LikeStatus `json:"status"`
}
