package login

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth/errors"
)

type Handler struct {
	svc *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{svc: s}
}

// Handle serves POST /auth/token.
func (h *Handler) Handle(c *fiber.Ctx) error {
	model := &TokenRequest{}
	if err := c.BodyParser(model); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	token, err := h.svc.Authenticate(c.UserContext(), model)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"token": token})
}
