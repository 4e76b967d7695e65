// Package cli holds the shared bootstrap used by every helpdesk
// subcommand: configuration, logging and the database connection.
package cli

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/shared/biztime"
	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

// Env bundles everything a command needs after bootstrap.
type Env struct {
	Config *config.Config
	Logger logger.Interface
}

// Setup loads configuration, initializes logging and opens the
// database. Callers must defer database.Close().
func Setup(env string) (*Env, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.App.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{
		Config: cfg,
		Logger: logger.NewLogger(),
	}, nil
}

// NewRedisClient connects to redis and verifies the connection.
// Callers must close the returned client.
func NewRedisClient(ctx context.Context, cfg *sharedConfig.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
