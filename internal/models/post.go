package models

import "time"

// Post is a content item on a user's timeline: an image or a video plus a
// description. LikeCount and DislikeCount are denormalized and mutated only
// by the reaction service inside its transaction.
type Post struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Description  string    `gorm:"type:text" json:"description"`
	ImageName    string    `gorm:"size:255" json:"image_name,omitempty"`
	VideoName    string    `gorm:"size:255" json:"video_name,omitempty"`
	LikeCount    int       `gorm:"default:0" json:"like_count"`
	DislikeCount int       `gorm:"default:0" json:"dislike_count"`
	PostedAt     time.Time `gorm:"not null;index" json:"posted_at"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

type LikeStatus string

const (
	LikeStatusLike    LikeStatus = "LIKE"
	LikeStatusDislike LikeStatus = "DISLIKE"
)

// PostLike records a user's reaction to a post, at most one row per
// (user, post). A second reaction of any kind toggles the row away.
type PostLike struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Status    LikeStatus `gorm:"size:10;not null" json:"status"`
	PostID    uint       `gorm:"not null;index" json:"post_id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`

	Post Post `gorm:"foreignKey:PostID" json:"-"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}
