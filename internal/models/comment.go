package models

import "time"

// Comment is a user's remark on a post. Comments are deleted by admins or
// removed along with their post.
type Comment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	PostID      uint      `gorm:"not null;index" json:"post_id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CommentedAt time.Time `gorm:"not null" json:"commented_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
	Post Post `gorm:"foreignKey:PostID" json:"-"`
}
