package handlers

import (
	"errors"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	authService    *services.AuthService
	postService    *services.PostService
	commentService *services.CommentService
}

func NewAdminHandler(authService *services.AuthService, postService *services.PostService, commentService *services.CommentService) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		postService:    postService,
		commentService: commentService,
	}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page := pageParam(c)
	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.authService.ListUsers(page, limit)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}

	return c.JSON(fiber.Map{
		"users":      out,
		"pagination": dto.NewPagination(page, limit, total),
	})
}

func (h *AdminHandler) BlockUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.authService.BlockUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "User blocked"})
}

func (h *AdminHandler) UnblockUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.authService.UnblockUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "User unblocked"})
}

func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	if err := h.authService.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (h *AdminHandler) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	if err := h.postService.Delete(id); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *AdminHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid comment id")
	}

	if err := h.commentService.Delete(id); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
