package services

import (
	"time"

	"github.com/friendfinder/backend/internal/models"
	"gorm.io/gorm"
)

// ActivityService appends to and reads the per-user activity log.
type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) Record(userID uint, activityType string) error {
	entry := models.UserActivity{
		UserID:     userID,
		Type:       activityType,
		OccurredAt: time.Now(),
	}
	return s.db.Create(&entry).Error
}

// Recent returns the latest four entries for display.
func (s *ActivityService) Recent(userID uint) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	err := s.db.Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Limit(4).
		Find(&activities).Error
	return activities, err
}
