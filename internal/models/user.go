package models

import (
	"time"
)

type UserRole string

const (
	RoleUser    UserRole = "USER"
	RoleAdmin   UserRole = "ADMIN"
	RoleBlocked UserRole = "BLOCKED"
)

type UserGender string

const (
	GenderMale   UserGender = "MALE"
	GenderFemale UserGender = "FEMALE"
)

// User is a registered member of the network. Accounts start disabled and
// carry a verification token until the email is confirmed; admins moderate
// by flipping Role between USER and BLOCKED.
type User struct {
	ID                       uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name                     string     `gorm:"size:100;not null" json:"name"`
	Surname                  string     `gorm:"size:100;not null" json:"surname"`
	Email                    string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password                 string     `gorm:"size:255;not null" json:"-"`
	DateOfBirth              *time.Time `json:"date_of_birth,omitempty"`
	Gender                   UserGender `gorm:"size:10" json:"gender,omitempty"`
	City                     string     `gorm:"size:100" json:"city,omitempty"`
	CountryID                *uint      `gorm:"index" json:"country_id,omitempty"`
	ProfilePicture           string     `gorm:"size:255" json:"profile_picture,omitempty"`
	ProfileBackgroundPicture string     `gorm:"size:255" json:"profile_background_picture,omitempty"`
	PersonalInformation      string     `gorm:"type:text" json:"personal_information,omitempty"`
	Enabled                  bool       `gorm:"default:false" json:"enabled"`
	Token                    string     `gorm:"size:64" json:"-"`
	Role                     UserRole   `gorm:"size:20;not null;default:'USER';index" json:"role"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`

	Country *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

// Country is seeded reference data.
type Country struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
}
