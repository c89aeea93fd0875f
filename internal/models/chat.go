package models

import "time"

// Chat pairs two users. At most one chat may exist per unordered pair; the
// service checks both column orders before creating one.
type Chat struct {
	ID           uint `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstUserID  uint `gorm:"not null;index" json:"first_user_id"`
	SecondUserID uint `gorm:"not null;index" json:"second_user_id"`

	FirstUser  User      `gorm:"foreignKey:FirstUserID" json:"first_user"`
	SecondUser User      `gorm:"foreignKey:SecondUserID" json:"second_user"`
	Messages   []Message `gorm:"foreignKey:ChatID" json:"messages,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Message is one line exchanged within a chat.
type Message struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ChatID     uint      `gorm:"not null;index" json:"chat_id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SentAt     time.Time `gorm:"not null" json:"sent_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}

// SentBy reports whether the message was written by the given user.
func (m Message) SentBy(userID uint) bool {
	return m.SenderID == userID
}
