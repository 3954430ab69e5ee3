package di

import (
	"go.uber.org/fx"

	"github.com/solanera/ventaflow/internal/adapter/cache"
	"github.com/solanera/ventaflow/internal/adapter/docstore"
	"github.com/solanera/ventaflow/internal/adapter/identity"
	"github.com/solanera/ventaflow/internal/app"
	"github.com/solanera/ventaflow/internal/config"
	"github.com/solanera/ventaflow/internal/logger"
	"github.com/solanera/ventaflow/internal/pkg/auth"
	"github.com/solanera/ventaflow/internal/server/http/handlers"
	"github.com/solanera/ventaflow/internal/server/http/router"
	"github.com/solanera/ventaflow/internal/storage/postgres"
	"github.com/solanera/ventaflow/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		docstore.Module,
		identity.Module,
		cache.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.WorkflowFacade) handlers.WorkflowFacade { return f },
			func(s *postgres.Storage) handlers.HealthChecker { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
