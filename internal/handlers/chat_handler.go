package handlers

import (
	"errors"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/middleware"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	var req dto.CreateChatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	chat, err := h.chatService.Create(userID, req.UserID)
	if err != nil {
		if errors.Is(err, services.ErrChatExists) {
			return conflict(c, err.Error())
		}
		if errors.Is(err, services.ErrSelfChat) {
			return badRequest(c, err.Error())
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(chat)
}

func (h *ChatHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	chats, err := h.chatService.ChatsFor(userID)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(chats)
}

func (h *ChatHandler) GetByID(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chat id")
	}

	chat, err := h.chatService.FindByID(id, true)
	if err != nil {
		if errors.Is(err, services.ErrChatNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	if chat.FirstUserID != userID && chat.SecondUserID != userID {
		return forbidden(c, "Not a participant of this chat")
	}

	return c.JSON(chat)
}

func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	message, err := h.chatService.SendMessage(userID, req.ReceiverID, req.ChatID, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrChatNotFound) {
			return notFound(c, err.Error())
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		if errors.Is(err, services.ErrMessageRejected) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		ID:         message.ID,
		ChatID:     message.ChatID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		SentAt:     message.SentAt,
	})
}
