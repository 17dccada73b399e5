package authrole

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/require"
)

func status(t *testing.T, user *types.UserContext, guard fiber.Handler, path string) int {
	t.Helper()
	app := fiber.New()
	if user != nil {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals(types.UserCtxName, *user)
			return c.Next()
		})
	}
	app.Get("/users/:username", guard, func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthRole_UnauthorizedWithoutUser(t *testing.T) {
	require.Equal(t, http.StatusUnauthorized, status(t, nil, New(Config{}), "/users/u1"))
	require.Equal(t, http.StatusUnauthorized, status(t, nil, Admin(), "/users/u1"))
	require.Equal(t, http.StatusUnauthorized, status(t, nil, CorrectUserOrAdmin("username"), "/users/u1"))
}

func TestAuthRole_AnyUser(t *testing.T) {
	require.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "u1"}, New(Config{Role: RoleUser}), "/users/u2"))
	require.Equal(t, http.StatusUnauthorized, status(t, &types.UserContext{}, New(Config{}), "/users/u2"))
}

func TestAuthRole_Admin(t *testing.T) {
	require.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "a", IsAdmin: true}, Admin(), "/users/u1"))
	require.Equal(t, http.StatusUnauthorized, status(t, &types.UserContext{Username: "u1"}, Admin(), "/users/u1"))
}

func TestAuthRole_CorrectUserOrAdmin(t *testing.T) {
	guard := CorrectUserOrAdmin("username")

	require.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "u1"}, guard, "/users/u1"))
	require.Equal(t, http.StatusOK, status(t, &types.UserContext{Username: "a", IsAdmin: true}, guard, "/users/u1"))
	require.Equal(t, http.StatusUnauthorized, status(t, &types.UserContext{Username: "u2"}, guard, "/users/u1"))
}
