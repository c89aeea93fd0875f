package services

import (
	"errors"
	"fmt"

	"github.com/friendfinder/backend/internal/models"
	"gorm.io/gorm"
)

// ReactionService is the like/dislike ledger: at most one PostLike row per
// (user, post). A second reaction of any kind toggles the stored one away;
// there is no single-call like→dislike transition.
type ReactionService struct {
	db *gorm.DB
}

func NewReactionService(db *gorm.DB) *ReactionService {
	return &ReactionService{db: db}
}

// React applies or removes a reaction inside one transaction. It returns
// the created row, or nil when an existing reaction was toggled off. The
// counter mutated on removal is the one matching the STORED reaction, not
// the requested one.
func (s *ReactionService) React(userID, postID uint, status models.LikeStatus) (*models.PostLike, error) {
	if status != models.LikeStatusLike && status != models.LikeStatusDislike {
		return nil, errors.New("status must be LIKE or DISLIKE")
	}

	var created *models.PostLike
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			return ErrPostNotFound
		}

		var existing models.PostLike
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			reaction := models.PostLike{
				Status: status,
				PostID: postID,
				UserID: userID,
			}
			if err := tx.Create(&reaction).Error; err != nil {
				return fmt.Errorf("failed to create reaction: %w", err)
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				Update(counterColumn(status), gorm.Expr(counterColumn(status)+" + 1")).Error; err != nil {
				return err
			}
			created = &reaction
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&existing).Error; err != nil {
			return err
		}
		return tx.Model(&models.Post{}).Where("id = ?", postID).
			Update(counterColumn(existing.Status), gorm.Expr(counterColumn(existing.Status)+" - 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func counterColumn(status models.LikeStatus) string {
	if status == models.LikeStatusLike {
		return "like_count"
	}
	return "dislike_count"
}
