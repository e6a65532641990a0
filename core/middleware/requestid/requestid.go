package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the generated request id.
const Header = "X-Request-Id"

// New creates a middleware that assigns a unique id to every request.
// The id is stored in c.Locals("request_id") and echoed in the response
// headers so clients can reference it when reporting problems.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals("request_id", rid)
		c.Set(Header, rid)
		return c.Next()
	}
}
