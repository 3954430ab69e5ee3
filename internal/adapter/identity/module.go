package identity

import (
	"go.uber.org/fx"

	pkgAuth "github.com/solanera/ventaflow/internal/pkg/auth"
)

// Module exposes the identity provider to the fx graph.
var Module = fx.Provide(func(tokens pkgAuth.Strategy) Provider {
	return NewTokenProvider(tokens)
})
