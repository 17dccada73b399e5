package users

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/middleware/authrole"
	"github.com/qolzam/jobly/users/handlers"
)

// UsersHandlers holds all the handlers this router needs.
type UsersHandlers struct {
	UserHandler *handlers.UserHandler
}

// RegisterRoutes mounts /users. Listing and creating need an admin; routes
// naming a user accept that user or an admin.
func RegisterRoutes(app *fiber.App, handlers *UsersHandlers) {
	group := app.Group("/users")

	admin := authrole.Admin()
	group.Post("/", admin, handlers.UserHandler.CreateUser)
	group.Get("/", admin, handlers.UserHandler.ListUsers)

	self := authrole.CorrectUserOrAdmin("username")
	group.Get("/:username", self, handlers.UserHandler.GetUser)
	group.Patch("/:username", self, handlers.UserHandler.UpdateUser)
	group.Delete("/:username", self, handlers.UserHandler.DeleteUser)
	group.Post("/:username/jobs/:id", self, handlers.UserHandler.ApplyToJob)
}
