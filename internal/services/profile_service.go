package services

import (
	"context"
	"fmt"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/models"
	"github.com/friendfinder/backend/internal/storage"
	"gorm.io/gorm"
)

// ProfileService edits the profile attributes of a user and the child rows
// hanging off it.
type ProfileService struct {
	db    *gorm.DB
	store storage.Storage
}

func NewProfileService(db *gorm.DB, store storage.Storage) *ProfileService {
	return &ProfileService{db: db, store: store}
}

func (s *ProfileService) Update(userID uint, req *dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	user.Name = req.Name
	user.Surname = req.Surname
	user.Email = req.Email
	user.DateOfBirth = req.DateOfBirth
	user.Gender = req.Gender
	user.City = req.City
	user.CountryID = req.CountryID
	user.PersonalInformation = req.PersonalInformation

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return &user, nil
}

// UpdateProfilePicture stores the upload, points the user at it, and keeps
// the old pictures as user_images history.
func (s *ProfileService) UpdateProfilePicture(ctx context.Context, userID uint, upload *Upload) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	name, err := s.store.Upload(ctx, "profile", upload.FileName, upload.Reader, upload.Size)
	if err != nil {
		return nil, fmt.Errorf("profile picture upload: %w", err)
	}

	if err := s.db.Create(&models.UserImage{UserID: userID, ImageName: name}).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&user).Update("profile_picture", name).Error; err != nil {
		return nil, err
	}
	user.ProfilePicture = name
	return &user, nil
}

func (s *ProfileService) UpdateBackgroundPicture(ctx context.Context, userID uint, upload *Upload) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	name, err := s.store.Upload(ctx, "profile-bg", upload.FileName, upload.Reader, upload.Size)
	if err != nil {
		return nil, fmt.Errorf("background picture upload: %w", err)
	}

	if err := s.db.Model(&user).Update("profile_background_picture", name).Error; err != nil {
		return nil, err
	}
	user.ProfileBackgroundPicture = name
	return &user, nil
}

func (s *ProfileService) Countries() ([]models.Country, error) {
	var countries []models.Country
	err := s.db.Order("name ASC").Find(&countries).Error
	return countries, err
}

func (s *ProfileService) AddInterest(userID uint, interest string) (*models.Interest, error) {
	row := models.Interest{UserID: userID, Interest: interest}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ProfileService) Interests(userID uint) ([]models.Interest, error) {
	var rows []models.Interest
	err := s.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (s *ProfileService) AddLanguage(userID uint, language string) (*models.Language, error) {
	row := models.Language{UserID: userID, Language: language}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ProfileService) Languages(userID uint) ([]models.Language, error) {
	var rows []models.Language
	err := s.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (s *ProfileService) AddEducation(userID uint, req *dto.AddEducationRequest) (*models.Education, error) {
	row := models.Education{
		UserID:     userID,
		EduName:    req.EduName,
		EduFrom:    req.EduFrom,
		EduTo:      req.EduTo,
		EduOngoing: req.EduOngoing,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ProfileService) Educations(userID uint) ([]models.Education, error) {
	var rows []models.Education
	err := s.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (s *ProfileService) AddWorkExperience(userID uint, req *dto.AddWorkExperienceRequest) (*models.WorkExperience, error) {
	row := models.WorkExperience{
		UserID:      userID,
		Company:     req.Company,
		Position:    req.Position,
		WorkFrom:    req.WorkFrom,
		WorkTo:      req.WorkTo,
		WorkOngoing: req.WorkOngoing,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *ProfileService) WorkExperiences(userID uint) ([]models.WorkExperience, error) {
	var rows []models.WorkExperience
	err := s.db.Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}
