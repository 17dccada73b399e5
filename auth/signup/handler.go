package signup

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/auth/errors"
)

type Handler struct {
	svc *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{svc: s}
}

// Handle serves POST /auth/register.
func (h *Handler) Handle(c *fiber.Ctx) error {
	model := &RegisterRequest{}
	if err := c.BodyParser(model); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	token, err := h.svc.Register(c.UserContext(), model)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"token": token})
}
