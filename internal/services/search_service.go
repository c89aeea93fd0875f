package services

import (
	"github.com/friendfinder/backend/internal/models"
	"gorm.io/gorm"
)

const searchPageSize = 2

// SearchService finds users by name or surname.
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

func (s *SearchService) ByKeyword(keyword string, page int) ([]models.User, int64, error) {
	pattern := "%" + keyword + "%"
	query := s.db.Model(&models.User{}).
		Where("name ILIKE ? OR surname ILIKE ?", pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.
		Offset((page - 1) * searchPageSize).
		Limit(searchPageSize).
		Find(&users).Error
	return users, total, err
}
