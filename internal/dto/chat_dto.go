package dto

import "time"

type CreateChatRequest struct {
	UserID uint `json:"user_id"`
}

type SendMessageRequest struct {
	ChatID     uint   `json:"chat_id"`
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

type MessageResponse struct {
	ID         uint      `json:"id"`
	ChatID     uint      `json:"chat_id"`
	SenderID   uint      `json:"sender_id"`
	ReceiverID uint      `json:"receiver_id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}
