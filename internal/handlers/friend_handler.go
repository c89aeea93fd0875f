package handlers

import (
	"errors"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/middleware"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FriendHandler struct {
	friendService *services.FriendService
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

func (h *FriendHandler) Send(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	receiverID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	request, err := h.friendService.Send(userID, receiverID)
	if err != nil {
		if errors.Is(err, services.ErrFriendRequestExists) {
			return conflict(c, err.Error())
		}
		if errors.Is(err, services.ErrSelfFriendRequest) {
			return badRequest(c, err.Error())
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

func (h *FriendHandler) Accept(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	senderID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	request, err := h.friendService.Accept(senderID, userID)
	if err != nil {
		if errors.Is(err, services.ErrFriendRequestNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(request)
}

func (h *FriendHandler) Remove(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	otherID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.friendService.Remove(userID, otherID); err != nil {
		if errors.Is(err, services.ErrFriendRequestNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Friend removed"})
}

func (h *FriendHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	friends, err := h.friendService.FriendsOf(userID)
	if err != nil {
		return internalError(c)
	}

	count, err := h.friendService.FriendCount(userID)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.UserResponse, 0, len(friends))
	for i := range friends {
		out = append(out, dto.NewUserResponse(&friends[i]))
	}

	return c.JSON(fiber.Map{
		"friends": out,
		"count":   count,
	})
}

func (h *FriendHandler) Page(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	page := pageParam(c)
	friends, total, err := h.friendService.FriendsPage(userID, page)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.UserResponse, 0, len(friends))
	for i := range friends {
		out = append(out, dto.NewUserResponse(&friends[i]))
	}

	return c.JSON(fiber.Map{
		"friends":    out,
		"pagination": dto.NewPagination(page, 12, total),
	})
}

func (h *FriendHandler) Incoming(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	senders, err := h.friendService.IncomingSenders(userID)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.UserResponse, 0, len(senders))
	for i := range senders {
		out = append(out, dto.NewUserResponse(&senders[i]))
	}

	return c.JSON(out)
}

func (h *FriendHandler) Candidates(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	candidates, err := h.friendService.AddFriendCandidates(userID)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.UserResponse, 0, len(candidates))
	for i := range candidates {
		out = append(out, dto.NewUserResponse(&candidates[i]))
	}

	return c.JSON(out)
}
