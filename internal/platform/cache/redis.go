package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to redis. A failed ping returns a nil client and no
// error: the slot cache and the rate limiter both run without redis.
func NewRedisClient(ctx context.Context, cfg Config, log logrus.FieldLogger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.WithError(err).WithField("addr", cfg.Addr).Warn("redis unavailable, continuing without cache")
		client.Close()
		return nil
	}

	log.WithField("addr", cfg.Addr).Info("redis connected")
	return client
}

func Close(client *redis.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("failed to close redis: %w", err)
	}
	return nil
}
