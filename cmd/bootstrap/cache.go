package bootstrap

import (
	"context"

	"agent-portal/internal/infra/cache"
	"agent-portal/internal/pkg/config"
	"agent-portal/internal/usecase/shared"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		fx.Annotate(
			NewCache,
			fx.As(new(shared.Cache)),
		),
	),
)

func NewCache(lc fx.Lifecycle, cfg config.Config) *cache.RedisCache {
	rc := cache.NewRedisCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rc.Close()
		},
	})

	return rc
}
