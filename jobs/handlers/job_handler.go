package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/database/sqlclause"
	"github.com/qolzam/jobly/internal/utils"
	"github.com/qolzam/jobly/internal/validation"
	"github.com/qolzam/jobly/jobs/errors"
	"github.com/qolzam/jobly/jobs/models"
	"github.com/qolzam/jobly/jobs/services"
)

// JobHandler handles all job-related HTTP requests
type JobHandler struct {
	jobService services.JobService
}

// NewJobHandler creates a new JobHandler with injected dependencies
func NewJobHandler(jobService services.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJob handles POST /jobs
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid request body")
	}

	job, err := h.jobService.CreateJob(c.UserContext(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"job": job})
}

// ListJobs handles GET /jobs
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	var filter models.JobFilter
	if err := validation.Query(&filter, utils.QueryValues(c)); err != nil {
		return errors.HandleValidationError(c, err)
	}

	jobs, err := h.jobService.ListJobs(c.UserContext(), filter)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob handles GET /jobs/:id
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	job, err := h.jobService.GetJob(c.UserContext(), id)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// UpdateJob handles PATCH /jobs/:id
func (h *JobHandler) UpdateJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	req, err := sqlclause.ParseUpdateRequest(c.Body())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	job, err := h.jobService.UpdateJob(c.UserContext(), id, req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"job": job})
}

// DeleteJob handles DELETE /jobs/:id
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := jobID(c)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}

	if err := h.jobService.DeleteJob(c.UserContext(), id); err != nil {
		return errors.HandleServiceError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": id})
}

// A non-numeric id cannot name a job.
func jobID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("id")
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errors.ErrJobNotFound, c.Params("id"))
	}
	return id, nil
}
