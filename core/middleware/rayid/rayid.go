// Package rayid assigns a unique request ID to every incoming request.
package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the generated ray ID.
const HeaderName = "X-Ray-Id"

// LocalsKey is the Fiber locals key under which the ray ID is stored.
const LocalsKey = "ray_id"

// New returns a middleware that stores a fresh UUID in the request context
// and echoes it on the response, so every log line and reply can be
// correlated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := uuid.NewString()
		c.Locals(LocalsKey, id)
		c.Set(HeaderName, id)
		return c.Next()
	}
}
