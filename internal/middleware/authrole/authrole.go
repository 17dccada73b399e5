package authrole

import (
	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/types"
)

// Role names accepted by Config.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Config selects the authorization rule.
type Config struct {
	// Role is RoleUser (any logged in caller) or RoleAdmin. Empty means RoleUser.
	Role string
	// SelfParam names a route parameter holding a username. When set, the
	// caller must be that user or an admin, and Role is ignored.
	SelfParam string
	// UserCtxName overrides the locals key holding types.UserContext.
	UserCtxName string
}

// New returns a handler that answers 401 unless the caller satisfies cfg.
func New(cfg Config) fiber.Handler {
	userKey := cfg.UserCtxName
	if userKey == "" {
		userKey = types.UserCtxName
	}

	return func(c *fiber.Ctx) error {
		user, ok := c.Locals(userKey).(types.UserContext)
		if !ok || user.Username == "" {
			return unauthorized(c)
		}

		switch {
		case cfg.SelfParam != "":
			if !user.CanActFor(c.Params(cfg.SelfParam)) {
				return unauthorized(c)
			}
		case cfg.Role == RoleAdmin:
			if !user.IsAdmin {
				return unauthorized(c)
			}
		}
		return c.Next()
	}
}

// Admin requires an admin caller.
func Admin() fiber.Handler { return New(Config{Role: RoleAdmin}) }

// CorrectUserOrAdmin requires the caller to be the user named by param, or an admin.
func CorrectUserOrAdmin(param string) fiber.Handler { return New(Config{SelfParam: param}) }

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    "UNAUTHORIZED",
		"message": "Unauthorized",
	})
}
