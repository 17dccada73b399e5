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

// Job service specific errors
var (
	ErrJobNotFound       = errors.New("job not found")
	ErrUnknownCompany    = errors.New("unknown company")
	ErrDatabaseOperation = errors.New("database operation failed")
)

// Error codes
const (
	CodeJobNotFound      = "JOB_NOT_FOUND"
	CodeUnknownCompany   = "UNKNOWN_COMPANY"
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
	case errors.Is(err, ErrJobNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    CodeJobNotFound,
			Message: "Job not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUnknownCompany):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeUnknownCompany,
			Message: "Unknown company",
			Details: err.Error(),
		})
	case errors.Is(err, validation.ErrValidation):
		return HandleValidationError(c, err)
	case errors.Is(err, sqlclause.ErrNoData):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    CodeNoData,
			Message: "No data",
		})
	case errors.Is(err, sqlclause.ErrInvalidArgument):
		return HandleInvalidRequestError(c, err.Error())
	case errors.Is(err, ErrDatabaseOperation):
		log.ErrorWithContext(c.UserContext(), "jobs: %v", err)
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    CodeDatabaseError,
			Message: "Database operation failed",
		})
	default:
		log.ErrorWithContext(c.UserContext(), "jobs: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
		})
	}
}

// HandleValidationError answers 400 with one detail per failed rule
func HandleValidationError(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeValidationFailed,
		Message: "Validation failed",
		Details: validation.Messages(err),
	})
}

// HandleInvalidRequestError handles invalid request errors with 400 Bad Request
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}
