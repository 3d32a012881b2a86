package condb

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/TcMarsh31/GrocXpressAdmin/utils"
)

// ConnectRedis returns nil when Redis is not configured or unreachable.
// Callers treat a nil client as "rate limiting disabled".
func ConnectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		utils.Log.WithError(err).Warn("redis unreachable, login rate limiting disabled")
		return nil
	}
	return client
}
