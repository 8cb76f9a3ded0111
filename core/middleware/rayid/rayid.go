package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the request/response header carrying the RayID.
const Header = "X-Ray-ID"

// LocalsKey is the fiber.Ctx locals key the RayID is stored under.
const LocalsKey = "ray_id"

// New returns a middleware that assigns every request a RayID. An incoming
// X-Ray-ID header is kept so callers can propagate their own.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(LocalsKey, id)
		c.Set(Header, id)
		return c.Next()
	}
}
