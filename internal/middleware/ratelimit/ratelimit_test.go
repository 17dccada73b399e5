package ratelimit

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/qolzam/jobly/internal/platform/config"
	"github.com/qolzam/jobly/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(handler)
	app.Post("/auth/token", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func post(t *testing.T, app *fiber.App, client string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader("{}"))
	req.Header.Set(types.HeaderContentType, "application/json")
	req.Header.Set("X-Client", client)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestRateLimit_LoginEndpoint_RejectsExcessiveRequests(t *testing.T) {
	app := newApp(NewLoginLimiter(nil, nil))

	for i := 0; i < 5; i++ {
		assert.Equal(t, 200, post(t, app, "a"))
	}

	req := httptest.NewRequest("POST", "/auth/token", strings.NewReader("{}"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 429, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", payload["code"])
	assert.Contains(t, payload["message"], "login")
	assert.Equal(t, float64(900), payload["retryAfter"])
}

func TestRateLimit_RegisterEndpoint_DefaultLimit(t *testing.T) {
	app := newApp(NewRegisterLimiter(nil, nil))

	for i := 0; i < 10; i++ {
		assert.Equal(t, 200, post(t, app, "a"))
	}
	assert.Equal(t, 429, post(t, app, "a"))
}

func TestRateLimit_CustomLimit_AppliedCorrectly(t *testing.T) {
	limit := &config.RateLimitConfig{Enabled: true, Max: 2, Duration: time.Minute}
	app := newApp(NewLoginLimiter(limit, nil))

	assert.Equal(t, 200, post(t, app, "a"))
	assert.Equal(t, 200, post(t, app, "a"))
	assert.Equal(t, 429, post(t, app, "a"))
}

func TestRateLimit_DisabledLimit_PassesThrough(t *testing.T) {
	limit := &config.RateLimitConfig{Enabled: false, Max: 1, Duration: time.Minute}
	app := newApp(NewLoginLimiter(limit, nil))

	for i := 0; i < 5; i++ {
		assert.Equal(t, 200, post(t, app, "a"))
	}
}

func TestRateLimit_KeyGenerator_IndependentClients(t *testing.T) {
	app := newApp(New(Config{
		EndpointType: EndpointLogin,
		Limit:        &config.RateLimitConfig{Enabled: true, Max: 1, Duration: time.Minute},
		KeyGenerator: func(c *fiber.Ctx) string { return c.Get("X-Client") },
	}))

	assert.Equal(t, 200, post(t, app, "a"))
	assert.Equal(t, 429, post(t, app, "a"))
	assert.Equal(t, 200, post(t, app, "b"))
}

func TestDefaultLimit(t *testing.T) {
	assert.Equal(t, 5, DefaultLimit(EndpointLogin).Max)
	assert.Equal(t, 15*time.Minute, DefaultLimit(EndpointLogin).Duration)
	assert.Equal(t, 10, DefaultLimit(EndpointRegister).Max)
	assert.Equal(t, "register", EndpointRegister.String())
}
