package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/pkg/log"
	userErrors "github.com/qolzam/jobly/users/errors"
)

// Error codes for auth service
const (
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeSystemError        = "SYSTEM_ERROR"
)

// Auth service specific errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSystemError        = errors.New("system error occurred")
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// HandleServiceError handles service errors and returns appropriate HTTP responses.
// Errors raised by the user store are answered the way the users API does.
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    CodeInvalidCredentials,
			Message: "Invalid username/password",
		})
	case errors.Is(err, ErrSystemError):
		log.ErrorWithContext(c.UserContext(), "auth: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    CodeSystemError,
			Message: "System error occurred",
		})
	default:
		return userErrors.HandleServiceError(c, err)
	}
}
