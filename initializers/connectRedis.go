package initializers

import (
	"context"
	"time"

	"github.com/Luxera/luxera-api/config"
	"github.com/Luxera/luxera-api/logger"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

func ConnectToRedis() {
	cfg := config.App.Redis

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid Redis URL")
	}

	opts.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(cfg.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if cmd := client.Ping(context.Background()); cmd.Err() != nil {
		logger.Fatal().Err(cmd.Err()).Msg("Failed to connect to Redis")
	}

	Redis = client
	logger.Info().Msg("Connected to Redis")
}
