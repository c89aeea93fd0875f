package handlers

import (
	"errors"
	"mime/multipart"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/middleware"
	"github.com/friendfinder/backend/internal/models"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	postService     *services.PostService
	reactionService *services.ReactionService
}

func NewPostHandler(postService *services.PostService, reactionService *services.ReactionService) *PostHandler {
	return &PostHandler{postService: postService, reactionService: reactionService}
}

func openUpload(header *multipart.FileHeader) (*services.Upload, func(), error) {
	file, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	upload := &services.Upload{
		FileName: header.Filename,
		Reader:   file,
		Size:     header.Size,
	}
	return upload, func() { file.Close() }, nil
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	description := c.FormValue("description")

	var image, video *services.Upload
	if header, err := c.FormFile("image"); err == nil {
		upload, closeFn, err := openUpload(header)
		if err != nil {
			return badRequest(c, "Invalid image upload")
		}
		defer closeFn()
		image = upload
	}
	if header, err := c.FormFile("video"); err == nil {
		upload, closeFn, err := openUpload(header)
		if err != nil {
			return badRequest(c, "Invalid video upload")
		}
		defer closeFn()
		video = upload
	}

	post, err := h.postService.Create(c.Context(), userID, description, image, video)
	if err != nil {
		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewPostResponse(post))
}

func (h *PostHandler) Feed(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	page := pageParam(c)
	posts, total, err := h.postService.FeedPage(userID, page)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"posts":      dto.NewPostResponses(posts),
		"pagination": dto.NewPagination(page, 5, total),
	})
}

func (h *PostHandler) ImageFeed(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	page := pageParam(c)
	posts, total, err := h.postService.ImageFeedPage(userID, page)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"posts":      dto.NewPostResponses(posts),
		"pagination": dto.NewPagination(page, 10, total),
	})
}

func (h *PostHandler) VideoFeed(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	page := pageParam(c)
	posts, total, err := h.postService.VideoFeedPage(userID, page)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"posts":      dto.NewPostResponses(posts),
		"pagination": dto.NewPagination(page, 10, total),
	})
}

func (h *PostHandler) Timeline(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	page := pageParam(c)
	posts, total, err := h.postService.TimelinePage(id, page)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"posts":      dto.NewPostResponses(posts),
		"pagination": dto.NewPagination(page, 5, total),
	})
}

func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	post, err := h.postService.FindByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(dto.NewPostResponse(post))
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	post, err := h.postService.FindByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	if post.UserID != userID && middleware.Role(c) != string(models.RoleAdmin) {
		return forbidden(c, "Not allowed to delete this post")
	}

	if err := h.postService.Delete(id); err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}

func (h *PostHandler) MediaURL(c *fiber.Ctx) error {
	object := c.Query("object")
	if object == "" {
		return badRequest(c, "Missing object name")
	}

	url, err := h.postService.MediaURL(c.Context(), object)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"url": url})
}

func (h *PostHandler) React(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	postID, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid post id")
	}

	var req dto.ReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Status != models.LikeStatusLike && req.Status != models.LikeStatusDislike {
		return badRequest(c, "Status must be LIKE or DISLIKE")
	}

	reaction, err := h.reactionService.React(userID, postID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	if reaction == nil {
		return c.JSON(fiber.Map{"message": "Reaction removed"})
	}
	return c.Status(fiber.StatusCreated).JSON(reaction)
}
