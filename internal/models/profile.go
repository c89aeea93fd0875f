package models

// Child rows hanging off a user's profile. Plain CRUD, no special logic.

type Interest struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Interest string `gorm:"size:100;not null" json:"interest"`
}

type Language struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	Language string `gorm:"size:100;not null" json:"language"`
}

type Education struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	EduName    string `gorm:"size:255;not null" json:"edu_name"`
	EduFrom    int    `json:"edu_from"`
	EduTo      int    `json:"edu_to"`
	EduOngoing bool   `gorm:"default:false" json:"edu_ongoing"`
}

type WorkExperience struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Company     string `gorm:"size:255;not null" json:"company"`
	Position    string `gorm:"size:255" json:"position"`
	WorkFrom    int    `json:"work_from"`
	WorkTo      int    `json:"work_to"`
	WorkOngoing bool   `gorm:"default:false" json:"work_ongoing"`
}

// UserImage keeps every profile picture a user has ever uploaded.
type UserImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	ImageName string `gorm:"size:255;not null" json:"image_name"`
}
