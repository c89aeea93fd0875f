package models

import "time"

// UserActivity is an append-only log of notable actions ("posted a photo",
// "commented on a post"). Reads are capped to the latest four entries.
type UserActivity struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Type       string    `gorm:"size:100;not null" json:"type"`
	OccurredAt time.Time `gorm:"not null;index" json:"occurred_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
