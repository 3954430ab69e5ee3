package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// OperationRepository describes persistence operations with purchase operations.
// Create materializes the full step plan as pending in one transaction.
type OperationRepository interface {
	Create(ctx context.Context, buyerID int64, amount decimal.Decimal, currency string, stepNames []string) (*model.Operation, []model.Step, error)
	GetByID(ctx context.Context, id int64) (*model.Operation, error)
	ListByBuyer(ctx context.Context, buyerID int64) ([]model.Operation, error)
	ListSteps(ctx context.Context, operationID int64) ([]model.Step, error)
}
