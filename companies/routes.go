package companies

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/companies/handlers"
	"github.com/qolzam/jobly/internal/middleware/authrole"
)

// CompaniesHandlers holds all the handlers this router needs.
type CompaniesHandlers struct {
	CompanyHandler *handlers.CompanyHandler
}

// RegisterRoutes mounts /companies. Reads are public; writes require an admin.
// The caller is expected to have installed authjwt on app.
func RegisterRoutes(app *fiber.App, handlers *CompaniesHandlers) {
	group := app.Group("/companies")

	group.Get("/", handlers.CompanyHandler.ListCompanies)
	group.Get("/:handle", handlers.CompanyHandler.GetCompany)

	admin := authrole.Admin()
	group.Post("/", admin, handlers.CompanyHandler.CreateCompany)
	group.Patch("/:handle", admin, handlers.CompanyHandler.UpdateCompany)
	group.Delete("/:handle", admin, handlers.CompanyHandler.DeleteCompany)
}
