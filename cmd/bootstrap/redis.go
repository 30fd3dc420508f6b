package bootstrap

import (
	"context"
	"log/slog"

	"salon-reserve/internal/infra/cache"
	"salon-reserve/internal/pkg/config"
	"salon-reserve/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewAvailabilityCache,
	),
)

// NewAvailabilityCache falls back to the no-op cache when redis is disabled.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) shared.AvailabilityCache {
	if !cfg.Redis.Enabled {
		slog.Info("redis disabled, availability cache is off")
		return cache.NoopAvailabilityCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// the cache is optional; a cold redis only costs lookups
			if err := client.Ping(ctx).Err(); err != nil {
				slog.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewRedisAvailabilityCache(client, cfg.Booking.AvailabilityCacheTTL)
}
