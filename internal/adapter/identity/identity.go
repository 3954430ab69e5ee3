package identity

import (
	"github.com/solanera/ventaflow/internal/domain/model"
	pkgAuth "github.com/solanera/ventaflow/internal/pkg/auth"
)

// Identity is the resolved acting user: who they are and on whose behalf
// they act in the workflow (organization side or buyer side).
type Identity struct {
	UserID      int64
	Role        model.UserRole
	DisplayName string
}

// Provider resolves the acting identity from a request token. The workflow
// core never performs credential checks itself.
type Provider interface {
	Resolve(token string) (Identity, error)
}

// TokenProvider resolves identities from signed auth tokens.
type TokenProvider struct {
	tokens pkgAuth.Strategy
}

// NewTokenProvider constructs TokenProvider.
func NewTokenProvider(tokens pkgAuth.Strategy) *TokenProvider {
	return &TokenProvider{tokens: tokens}
}

// Resolve verifies the token and maps its claims to an Identity.
func (p *TokenProvider) Resolve(token string) (Identity, error) {
	if token == "" {
		return Identity{}, pkgAuth.ErrInvalidToken
	}
	claims, err := p.tokens.ParseToken(token)
	if err != nil {
		return Identity{}, err
	}

	role := model.UserRole(claims.Role)
	switch role {
	case model.UserRoleOrganization, model.UserRoleBuyer:
	default:
		return Identity{}, pkgAuth.ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Role: role, DisplayName: claims.DisplayName}, nil
}
