package handlers

import (
	"errors"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/middleware"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	authService     *services.AuthService
	activityService *services.ActivityService
	searchService   *services.SearchService
}

func NewUserHandler(authService *services.AuthService, activityService *services.ActivityService, searchService *services.SearchService) *UserHandler {
	return &UserHandler{
		authService:     authService,
		activityService: activityService,
		searchService:   searchService,
	}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	user, err := h.authService.FindByID(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	user, err := h.authService.FindByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(dto.NewUserResponse(user))
}

func (h *UserHandler) Activities(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	activities, err := h.activityService.Recent(id)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(activities)
}

func (h *UserHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	page := pageParam(c)

	users, total, err := h.searchService.ByKeyword(keyword, page)
	if err != nil {
		return internalError(c)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}

	return c.JSON(fiber.Map{
		"users":      out,
		"pagination": dto.NewPagination(page, 2, total),
	})
}
