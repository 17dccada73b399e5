// Package ratelimit provides rate limiting middleware for the authentication endpoints.
package ratelimit

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/qolzam/jobly/internal/pkg/log"
	"github.com/qolzam/jobly/internal/platform/config"
)

// EndpointType represents the authentication endpoints that are rate limited
type EndpointType int

const (
	EndpointLogin EndpointType = iota
	EndpointRegister
)

func (e EndpointType) String() string {
	switch e {
	case EndpointLogin:
		return "login"
	case EndpointRegister:
		return "register"
	default:
		return "unknown"
	}
}

// DefaultLimit returns the built-in limit for an endpoint type.
func DefaultLimit(endpoint EndpointType) config.RateLimitConfig {
	switch endpoint {
	case EndpointLogin:
		return config.RateLimitConfig{Enabled: true, Max: 5, Duration: 15 * time.Minute}
	case EndpointRegister:
		return config.RateLimitConfig{Enabled: true, Max: 10, Duration: time.Hour}
	default:
		return config.RateLimitConfig{Enabled: true, Max: 5, Duration: 15 * time.Minute}
	}
}

// Config holds the configuration for rate limiting middleware
type Config struct {
	EndpointType EndpointType

	// Limit overrides DefaultLimit(EndpointType) when non-nil.
	Limit *config.RateLimitConfig

	// Storage keeps hit counters. Nil uses the limiter's in-memory store.
	Storage fiber.Storage

	// Next defines a function to skip this middleware when returned true
	Next func(c *fiber.Ctx) bool

	// KeyGenerator defaults to client IP plus request path.
	KeyGenerator func(c *fiber.Ctx) string

	// LimitReached defines the response when rate limit is exceeded
	LimitReached func(c *fiber.Ctx) error
}

func configDefault(cfg Config) Config {
	if cfg.Limit == nil {
		limit := DefaultLimit(cfg.EndpointType)
		cfg.Limit = &limit
	}

	if cfg.KeyGenerator == nil {
		cfg.KeyGenerator = func(c *fiber.Ctx) string {
			return c.IP() + ":" + c.Path()
		}
	}

	if cfg.LimitReached == nil {
		endpointName := cfg.EndpointType.String()
		window := cfg.Limit.Duration
		cfg.LimitReached = func(c *fiber.Ctx) error {
			log.WarnWithContext(c.UserContext(), "[RateLimit] Rate limit exceeded for %s from IP: %s", endpointName, c.IP())

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"code":       "RATE_LIMIT_EXCEEDED",
				"message":    fmt.Sprintf("Too many %s attempts. Please try again later.", endpointName),
				"retryAfter": int(window.Seconds()),
			})
		}
	}

	return cfg
}

// New creates a new rate limiting middleware handler. A disabled limit
// yields a pass-through handler.
func New(cfg Config) fiber.Handler {
	cfg = configDefault(cfg)

	if !cfg.Limit.Enabled {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return limiter.New(limiter.Config{
		Max:          cfg.Limit.Max,
		Expiration:   cfg.Limit.Duration,
		KeyGenerator: cfg.KeyGenerator,
		LimitReached: cfg.LimitReached,
		Next:         cfg.Next,
		Storage:      cfg.Storage,
	})
}

// NewLoginLimiter creates a rate limiter for the token endpoint.
func NewLoginLimiter(limit *config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	return New(Config{EndpointType: EndpointLogin, Limit: limit, Storage: storage})
}

// NewRegisterLimiter creates a rate limiter for the registration endpoint.
func NewRegisterLimiter(limit *config.RateLimitConfig, storage fiber.Storage) fiber.Handler {
	return New(Config{EndpointType: EndpointRegister, Limit: limit, Storage: storage})
}
