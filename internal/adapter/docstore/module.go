package docstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/solanera/ventaflow/internal/config"
)

// Module exposes the document store client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.DocStoreAddress, p.Logger)
}
