package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/TcMarsh31/GrocXpressAdmin/config"
	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

const (
	loginRateWindow = 5 * time.Second
	loginRateLimit  = 12
)

// LoginRateLimit throttles repeated hits to the auth routes outside
// production, keyed by a client signature. It fails open: production
// builds, a missing Redis client, or a Redis error all pass the request
// through untouched.
func LoginRateLimit(cfg config.Config, rdb *redis.Client, log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Production() || rdb == nil {
			return c.Next()
		}

		sig := c.Get("User-Agent") + "|" + c.Get("Referer")
		key := "ratelimit:login:" + sig

		count, err := rdb.Incr(c.UserContext(), key).Result()
		if err != nil {
			log.WithError(err).Warn("login rate limiter unavailable")
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(c.UserContext(), key, loginRateWindow)
		}
		if count > loginRateLimit {
			log.WithFields(logrus.Fields{"sig": sig, "count": count}).Warn("login rate limit hit")
			c.Set("Retry-After", "5")
			return utils.Error(c, utils.NewAPIError("Too many requests", fiber.StatusTooManyRequests, "RATE_LIMITED"), fiber.StatusTooManyRequests)
		}
		return c.Next()
	}
}
