// Copyright (c) 2025 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/validation"
)

// User service specific errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUser     = errors.New("duplicate username")
	ErrJobNotFound       = errors.New("job not found")
	ErrAlreadyApplied    = errors.New("already applied")
	ErrWeakPassword      = errors.New("password is too weak")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeDuplicateUser    = "DUPLICATE_USER"
	CodeJobNotFound      = "JOB_NOT_FOUND"
	CodeAlreadyApplied   = "ALREADY_APPLIED"
	CodeWeakPassword     = "WEAK_PASSWORD"
	CodeNoData           = "NO_DATA"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeDatabaseError    = "DATABASE_ERROR"
)

// ErrorResponse represents the standardized error response format
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps service errors to HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrUserNotFound):
		return respond(c, http.StatusNotFound, CodeUserNotFound, "User not found", err.Error())
	case errors.Is(err, ErrJobNotFound):
		return respond(c, http.StatusNotFound, CodeJobNotFound, "Job not found", err.Error())
	case errors.Is(err, ErrDuplicateUser):
		return respond(c, http.StatusBadRequest, CodeDuplicateUser, "Duplicate username", err.Error())
	case errors.Is(err, ErrAlreadyApplied):
		return respond(c, http.StatusBadRequest, CodeAlreadyApplied, "Already applied", err.Error())
	case errors.Is(err, ErrWeakPassword):
		return respond(c, http.StatusBadRequest, CodeWeakPassword, "Password is too weak", nil)
	case errors.Is(err, validation.ErrValidation):
		return HandleValidationError(c, err)
	case errors.Is(err, sqlclause.ErrNoData):
		return respond(c, http.StatusBadRequest, CodeNoData, "No data", nil)
	case errors.Is(err, sqlclause.ErrInvalidArgument):
		return HandleInvalidRequestError(c, err.Error())
	case errors.Is(err, ErrDatabaseOperation):
		log.ErrorWithContext(c.UserContext(), "users: %v", err)
		return respond(c, http.StatusServiceUnavailable, CodeDatabaseError, "Database operation failed", nil)
	default:
		log.ErrorWithContext(c.UserContext(), "users: %v", err)
		return respond(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred", nil)
	}
}

// HandleValidationError answers 400 with one detail per failed rule
func HandleValidationError(c *fiber.Ctx, err error) error {
	return respond(c, http.StatusBadRequest, CodeValidationFailed, "Validation failed", validation.Messages(err))
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return respond(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

func respond(c *fiber.Ctx, status int, code, message string, details interface{}) error {
	return c.Status(status).JSON(ErrorResponse{
		Code:    code,
		Message: message,
		Details: details,
	})
}
