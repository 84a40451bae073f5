package config

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// ConnectRedis returns a Redis client when REDIS_ADDR (or REDIS_URL) is set,
// nil otherwise. The caller falls back to the in-memory session store on nil.
func ConnectRedis() *redis.Client {
	if raw := strings.TrimSpace(os.Getenv("REDIS_URL")); raw != "" {
		opts, err := redis.ParseURL(raw)
		if err != nil {
			log.WithError(err).Warn("invalid REDIS_URL, sessions will be in-memory")
			return nil
		}
		return verifyRedis(redis.NewClient(opts))
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return verifyRedis(client)
}

func verifyRedis(client *redis.Client) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.WithError(err).Warn("redis unreachable, sessions will be in-memory")
		_ = client.Close()
		return nil
	}
	log.Info("redis connected, sessions stored in redis")
	return client
}
