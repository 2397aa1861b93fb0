package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient parses a redis:// or rediss:// URL, applies pool and
// timeout settings and verifies the connection with PING.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("failed to parse redis URL")
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolTimeout = 4 * time.Second
	opts.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}
