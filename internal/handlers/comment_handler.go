package handlers

import (
	"errors"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/middleware"
	"github.com/friendfinder/backend/internal/models"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Add(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	postID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.commentService.Add(userID, postID, req.Text)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, err.Error())
		}
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) ListByPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	comments, err := h.commentService.ListByPost(postID)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, dto.NewCommentResponse(&comments[i]))
	}

	return c.JSON(out)
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid comment id")
	}

	comment, err := h.commentService.FindByID(id)
	if err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	if comment.UserID != userID && middleware.Role(c) != string(models.RoleAdmin) {
		return forbidden(c, "Not allowed to delete this comment")
	}

	if err := h.commentService.Delete(id); err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted"})
}
