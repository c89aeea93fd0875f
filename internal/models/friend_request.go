package models

import "time"

type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "PENDING"
	FriendStatusAccepted FriendStatus = "ACCEPTED"
)

// FriendRequest is a directed request between two users. Friendship is not
// stored anywhere: two users are friends iff an ACCEPTED request connects
// them in either direction. At most one request may exist per unordered
// pair; the service checks both directions before inserting.
type FriendRequest struct {
	ID         uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID   uint         `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint         `gorm:"not null;index" json:"receiver_id"`
	Status     FriendStatus `gorm:"size:20;not null;default:'PENDING';index" json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	Sender   User `gorm:"foreignKey:SenderID" json:"-"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"-"`
}
