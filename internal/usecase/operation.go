package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
)

// OperationUseCase encapsulates operation lifecycle logic.
type OperationUseCase struct {
	operations repository.OperationRepository
}

// NewOperationUseCase constructs OperationUseCase.
func NewOperationUseCase(operations repository.OperationRepository) *OperationUseCase {
	return &OperationUseCase{operations: operations}
}

// Create registers a new purchase operation with its full step plan. Every
// step is materialized pending; the first stage requires an explicit start.
func (u *OperationUseCase) Create(ctx context.Context, buyerID int64, amount decimal.Decimal, currency string, stepNames []string) (*model.Operation, []model.Step, error) {
	if amount.IsNegative() {
		return nil, nil, domainErrors.ErrInvalidAmount
	}
	if strings.TrimSpace(currency) == "" {
		return nil, nil, domainErrors.ErrInvalidAmount
	}

	plan := make([]string, 0, len(stepNames))
	for _, name := range stepNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		plan = append(plan, name)
	}
	if len(plan) == 0 {
		return nil, nil, domainErrors.ErrEmptyStepPlan
	}

	return u.operations.Create(ctx, buyerID, amount, currency, plan)
}

// Get returns the operation with its steps and derived overall status.
func (u *OperationUseCase) Get(ctx context.Context, id int64) (*model.Operation, []model.Step, error) {
	op, err := u.operations.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	steps, err := u.operations.ListSteps(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	op.Status = model.DeriveOperationStatus(steps)
	return op, steps, nil
}

// ListByBuyer returns a buyer's operations, each with derived status.
func (u *OperationUseCase) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Operation, error) {
	ops, err := u.operations.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	for i := range ops {
		steps, err := u.operations.ListSteps(ctx, ops[i].ID)
		if err != nil {
			return nil, err
		}
		ops[i].Status = model.DeriveOperationStatus(steps)
	}
	return ops, nil
}
