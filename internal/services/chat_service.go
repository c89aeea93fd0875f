package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/friendfinder/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrSelfChat        = errors.New("cannot open a chat with yourself")
	ErrChatExists      = errors.New("chat already exists between these users")
	ErrChatNotFound    = errors.New("chat not found")
	ErrMessageRejected = errors.New("message validation failed")
)

// ChatService pairs users into chats and records the messages exchanged in
// them. One chat per unordered user pair.
type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

// Create opens a chat between the current user and another. Self-chats,
// unknown users, and existing chats in either column order are rejected.
func (s *ChatService) Create(currentUserID, otherUserID uint) (*models.Chat, error) {
	if currentUserID == otherUserID {
		return nil, ErrSelfChat
	}

	var other models.User
	if err := s.db.First(&other, otherUserID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	if s.findPair(currentUserID, otherUserID) != nil || s.findPair(otherUserID, currentUserID) != nil {
		return nil, ErrChatExists
	}

	chat := models.Chat{
		FirstUserID:  currentUserID,
		SecondUserID: otherUserID,
	}
	if err := s.db.Create(&chat).Error; err != nil {
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}
	return &chat, nil
}

func (s *ChatService) findPair(firstID, secondID uint) *models.Chat {
	var chat models.Chat
	if err := s.db.Where("first_user_id = ? AND second_user_id = ?", firstID, secondID).
		First(&chat).Error; err != nil {
		return nil
	}
	return &chat
}

// ChatsFor lists every chat a user participates in, either side.
func (s *ChatService) ChatsFor(userID uint) ([]models.Chat, error) {
	var chats []models.Chat
	err := s.db.
		Where("first_user_id = ? OR second_user_id = ?", userID, userID).
		Preload("FirstUser").
		Preload("SecondUser").
		Find(&chats).Error
	return chats, err
}

// FindByID loads a chat. Messages are loaded only when withMessages is set;
// there is no lazy fetch anywhere.
func (s *ChatService) FindByID(id uint, withMessages bool) (*models.Chat, error) {
	query := s.db.Preload("FirstUser").Preload("SecondUser")
	if withMessages {
		query = query.Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("sent_at ASC")
		})
	}

	var chat models.Chat
	if err := query.First(&chat, id).Error; err != nil {
		return nil, ErrChatNotFound
	}
	return &chat, nil
}

// SendMessage validates that the receiver and the chat exist, then inserts
// the message stamped with the current time.
func (s *ChatService) SendMessage(senderID, receiverID, chatID uint, content string) (*models.Message, error) {
	if content == "" {
		return nil, ErrMessageRejected
	}

	var receiver models.User
	if err := s.db.First(&receiver, receiverID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var chat models.Chat
	if err := s.db.First(&chat, chatID).Error; err != nil {
		return nil, ErrChatNotFound
	}

	message := models.Message{
		ChatID:     chatID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     time.Now(),
	}
	if err := s.db.Create(&message).Error; err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return &message, nil
}
