// Package server assembles the HTTP application from the domain packages.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	jsoniter "github.com/json-iterator/go"
	"github.com/qolzam/jobly/auth"
	"github.com/qolzam/jobly/auth/jwks"
	"github.com/qolzam/jobly/auth/login"
	"github.com/qolzam/jobly/auth/signup"
	"github.com/qolzam/jobly/companies"
	companyHandlers "github.com/qolzam/jobly/companies/handlers"
	companyRepository "github.com/qolzam/jobly/companies/repository"
	companyServices "github.com/qolzam/jobly/companies/services"
	"github.com/qolzam/jobly/internal/auth/tokens"
	"github.com/qolzam/jobly/internal/database/postgres"
	"github.com/qolzam/jobly/internal/middleware/authjwt"
	"github.com/qolzam/jobly/internal/middleware/requestid"
	"github.com/qolzam/jobly/internal/pkg/log"
	platformconfig "github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/jobs"
	jobHandlers "github.com/qolzam/jobly/jobs/handlers"
	jobRepository "github.com/qolzam/jobly/jobs/repository"
	jobServices "github.com/qolzam/jobly/jobs/services"
	"github.com/qolzam/jobly/users"
	userHandlers "github.com/qolzam/jobly/users/handlers"
	userRepository "github.com/qolzam/jobly/users/repository"
	userServices "github.com/qolzam/jobly/users/services"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Repositories are the stores behind each domain.
type Repositories struct {
	Companies companyRepository.Repository
	Jobs      jobRepository.Repository
	Users     userRepository.Repository
}

// NewRepositories binds every repository to one PostgreSQL client.
func NewRepositories(client *postgres.Client) Repositories {
	return Repositories{
		Companies: companyRepository.NewPostgresRepository(client),
		Jobs:      jobRepository.NewPostgresRepository(client),
		Users:     userRepository.NewPostgresRepository(client),
	}
}

// Dependencies is everything New needs to build the app.
type Dependencies struct {
	Config       *platformconfig.Config
	Repositories Repositories
	Tokens       *tokens.Issuer

	// Storage keeps rate limit counters. Nil keeps them in memory.
	Storage fiber.Storage

	// Health backs GET /health. Nil always reports ok.
	Health func(ctx context.Context) error
}

// ErrorResponse is the body written for errors no domain handler answered.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// New builds the Fiber app with middleware and every route mounted.
func New(deps Dependencies) (*fiber.App, error) {
	cfg := deps.Config
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	if deps.Tokens == nil {
		return nil, errors.New("server: token issuer is required")
	}

	jwksHandler, err := jwks.NewHandler(cfg.JWT.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "jobly",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadTimeout:           cfg.Server.ReadTimeout,
		ErrorHandler:          errorHandler,
		DisableStartupMessage: !cfg.Server.Debug,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))
	app.Use(authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey}))

	app.Get("/health", healthHandler(deps.Health))

	repos := deps.Repositories
	auth.RegisterRoutes(app, &auth.AuthHandlers{
		LoginHandler:  login.NewHandler(login.NewService(repos.Users, deps.Tokens)),
		SignupHandler: signup.NewHandler(signup.NewService(repos.Users, deps.Tokens, cfg.Security)),
		JWKSHandler:   jwksHandler,
	}, cfg, deps.Storage)

	companies.RegisterRoutes(app, &companies.CompaniesHandlers{
		CompanyHandler: companyHandlers.NewCompanyHandler(companyServices.NewCompanyService(repos.Companies)),
	})
	jobs.RegisterRoutes(app, &jobs.JobsHandlers{
		JobHandler: jobHandlers.NewJobHandler(jobServices.NewJobService(repos.Jobs, repos.Companies)),
	})
	users.RegisterRoutes(app, &users.UsersHandlers{
		UserHandler: userHandlers.NewUserHandler(userServices.NewUserService(repos.Users, deps.Tokens, cfg.Security)),
	})

	// Anything left unmatched is a 404.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app, nil
}

func healthHandler(check func(ctx context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if check != nil {
			if err := check(c.UserContext()); err != nil {
				log.ErrorWithContext(c.UserContext(), "health check failed: %v", err)
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

// errorHandler answers errors that escaped the domain handlers. A response
// already written by a handler is left alone.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if len(c.Response().Body()) > 0 && c.Response().StatusCode() >= http.StatusBadRequest {
		return nil
	}

	if code >= http.StatusInternalServerError {
		log.ErrorWithContext(c.UserContext(), "%s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(ErrorResponse{
		Code:    errorCode(code),
		Message: http.StatusText(code),
	})
}

func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "INTERNAL_ERROR"
	}
}
