package repository

import (
	"context"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// UserRepository describes persistence operations with dashboard accounts.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string, role model.UserRole, displayName string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
