package handlers

import (
	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/middleware"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.profileService.Update(userID, &req)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(dto.NewUserResponse(user))
}

func (h *ProfileHandler) UpdateProfilePicture(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Missing file upload")
	}
	upload, closeFn, err := openUpload(header)
	if err != nil {
		return badRequest(c, "Invalid file upload")
	}
	defer closeFn()

	user, err := h.profileService.UpdateProfilePicture(c.Context(), userID, upload)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"profile_picture": user.ProfilePicture})
}

func (h *ProfileHandler) UpdateBackgroundPicture(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "Missing file upload")
	}
	upload, closeFn, err := openUpload(header)
	if err != nil {
		return badRequest(c, "Invalid file upload")
	}
	defer closeFn()

	user, err := h.profileService.UpdateBackgroundPicture(c.Context(), userID, upload)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(fiber.Map{"profile_background_picture": user.ProfileBackgroundPicture})
}

func (h *ProfileHandler) Countries(c *fiber.Ctx) error {
	countries, err := h.profileService.Countries()
	if err != nil {
		return internalError(c)
	}
	return c.JSON(countries)
}

func (h *ProfileHandler) AddInterest(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	var req dto.AddInterestRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	interest, err := h.profileService.AddInterest(userID, req.Interest)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(interest)
}

func (h *ProfileHandler) Interests(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	interests, err := h.profileService.Interests(id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(interests)
}

func (h *ProfileHandler) AddLanguage(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	var req dto.AddLanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	language, err := h.profileService.AddLanguage(userID, req.Language)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(language)
}

func (h *ProfileHandler) Languages(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	languages, err := h.profileService.Languages(id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(languages)
}

func (h *ProfileHandler) AddEducation(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	var req dto.AddEducationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	education, err := h.profileService.AddEducation(userID, &req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(education)
}

func (h *ProfileHandler) Educations(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	educations, err := h.profileService.Educations(id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(educations)
}

func (h *ProfileHandler) AddWorkExperience(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c, "Invalid token")
	}

	var req dto.AddWorkExperienceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	work, err := h.profileService.AddWorkExperience(userID, &req)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(work)
}

func (h *ProfileHandler) WorkExperiences(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id")
	}

	works, err := h.profileService.WorkExperiences(id)
	if err != nil {
		return internalError(c)
	}
	return c.JSON(works)
}
