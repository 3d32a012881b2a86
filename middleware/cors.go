package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TcMarsh31/GrocXpressAdmin/config"
)

// CORS answers preflight requests directly and stamps every other response
// with the static allow headers. An origin outside the allow-list gets the
// first allow-listed origin echoed back; the browser will still refuse the
// cross-origin read, so this does not widen access.
func CORS(cfg config.Config) fiber.Handler {
	allowed := cfg.AllowedOrigins()
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		allowOrigin := allowed[0]
		for _, o := range allowed {
			if o == origin {
				allowOrigin = origin
				break
			}
		}

		c.Set("Access-Control-Allow-Origin", allowOrigin)
		c.Set("Access-Control-Allow-Credentials", "true")
		c.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Set("Access-Control-Max-Age", "86400")

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Next()
	}
}
