package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/friendfinder/backend/internal/models"
	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewCommentService(db *gorm.DB, activity *ActivityService) *CommentService {
	return &CommentService{db: db, activity: activity}
}

func (s *CommentService) Add(userID, postID uint, text string) (*models.Comment, error) {
	if text == "" {
		return nil, errors.New("comment text is required")
	}

	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, ErrPostNotFound
	}

	comment := models.Comment{
		UserID:      userID,
		PostID:      postID,
		Text:        text,
		CommentedAt: time.Now(),
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if err := s.activity.Record(userID, "commented on a post"); err != nil {
		slog.Error("failed to record activity", "user_id", userID, "error", err)
	}
	return &comment, nil
}

func (s *CommentService) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("post_id = ?", postID).
		Preload("User").
		Order("commented_at ASC").
		Find(&comments).Error
	return comments, err
}

func (s *CommentService) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, ErrCommentNotFound
	}
	return &comment, nil
}

func (s *CommentService) Delete(id uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return ErrCommentNotFound
	}
	return s.db.Delete(&comment).Error
}
