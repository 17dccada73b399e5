package utils

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// QueryValues copies the request query string, repeated keys included.
func QueryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})
	return values
}
