package dto

import (
	"time"

	"github.com/friendfinder/backend/internal/models"
)

type UpdateProfileRequest struct {
	Name                string            `json:"name"`
	Surname             string            `json:"surname"`
	Email               string            `json:"email"`
	DateOfBirth         *time.Time        `json:"date_of_birth,omitempty"`
	Gender              models.UserGender `json:"gender,omitempty"`
	City                string            `json:"city,omitempty"`
	CountryID           *uint             `json:"country_id,omitempty"`
	PersonalInformation string            `json:"personal_information,omitempty"`
}

type AddInterestRequest struct {
	Interest string `json:"interest"`
}

type AddLanguageRequest struct {
	Language string `json:"language"`
}

type AddEducationRequest struct {
	EduName    string `json:"edu_name"`
	EduFrom    int    `json:"edu_from"`
	EduTo      int    `json:"edu_to"`
	EduOngoing bool   `json:"edu_ongoing"`
}

type AddWorkExperienceRequest struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	WorkFrom    int    `json:"work_from"`
	WorkTo      int    `json:"work_to"`
	WorkOngoing bool   `json:"work_ongoing"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
