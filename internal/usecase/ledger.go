package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
)

// LedgerUseCase drives the step ledger: looking up the active stage and
// advancing it through the state machine.
type LedgerUseCase struct {
	steps repository.StepRepository
}

// NewLedgerUseCase constructs LedgerUseCase.
func NewLedgerUseCase(steps repository.StepRepository) *LedgerUseCase {
	return &LedgerUseCase{steps: steps}
}

// CurrentStep returns the operation's in_progress step, or ErrNotFound when
// no step is active.
func (u *LedgerUseCase) CurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	return u.steps.CurrentStep(ctx, operationID)
}

// NextPendingStep returns the pending step with the smallest order.
func (u *LedgerUseCase) NextPendingStep(ctx context.Context, operationID int64) (*model.Step, error) {
	return u.steps.NextPendingStep(ctx, operationID)
}

// StartNextStep activates the next pending step. Starting while another
// step is active, or out of order, fails with ErrOutOfOrderTransition.
func (u *LedgerUseCase) StartNextStep(ctx context.Context, operationID int64) (*model.Step, error) {
	next, err := u.steps.NextPendingStep(ctx, operationID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidTransition
		}
		return nil, err
	}
	return u.steps.Advance(ctx, operationID, next.ID, model.StepStatusInProgress)
}

// CompleteCurrentStep completes the operation's active step. The document
// gate is re-evaluated inside the advancing transaction; the next stage is
// never auto-started.
func (u *LedgerUseCase) CompleteCurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	current, err := u.steps.CurrentStep(ctx, operationID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidTransition
		}
		return nil, err
	}
	return u.steps.Advance(ctx, operationID, current.ID, model.StepStatusCompleted)
}
