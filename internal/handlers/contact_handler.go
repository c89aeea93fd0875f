package handlers

import (
	"errors"

	"github.com/friendfinder/backend/internal/dto"
	"github.com/friendfinder/backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.contactService.Submit(&req); err != nil {
		if errors.Is(err, services.ErrContactValidation) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}

	return c.JSON(fiber.Map{"message": "Message sent"})
}
