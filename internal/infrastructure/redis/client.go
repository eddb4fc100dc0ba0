package redis

import (
	"context"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tasknest/backend/internal/config"
)

const pingTimeout = 3 * time.Second

// Connect builds a Redis client from the configured URL and fails fast when
// the server is unreachable; the session store is useless without it.
func Connect(cfg config.RedisConfig, logger *zap.Logger) (*redislib.Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts, err := redislib.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redislib.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	logger.Info("redis ready", zap.Int("db", opts.DB))
	return client, nil
}
