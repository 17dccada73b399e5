package jobs

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	"github.com/qolzam/jobly/jobs/handlers"
)

// JobsHandlers holds all the handlers this router needs.
type JobsHandlers struct {
	JobHandler *handlers.JobHandler
}

// RegisterRoutes mounts /jobs. Reads are public; writes require an admin.
func RegisterRoutes(app *fiber.App, handlers *JobsHandlers) {
	group := app.Group("/jobs")

	group.Get("/", handlers.JobHandler.ListJobs)
	group.Get("/:id", handlers.JobHandler.GetJob)

	admin := authrole.Admin()
	group.Post("/", admin, handlers.JobHandler.CreateJob)
	group.Patch("/:id", admin, handlers.JobHandler.UpdateJob)
	group.Delete("/:id", admin, handlers.JobHandler.DeleteJob)
}
