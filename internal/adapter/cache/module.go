package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/solanera/ventaflow/internal/config"
)

// Module provides the step cache: Redis when an address is configured,
// otherwise a no-op.
var Module = fx.Provide(newStepCache)

type cacheParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

func newStepCache(p cacheParams) StepCache {
	if p.Config.RedisAddress == "" {
		return Noop{}
	}
	c := NewRedisCache(p.Config.RedisAddress, p.Config.CacheTTL, p.Logger)
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return c.Close()
		},
	})
	return c
}
