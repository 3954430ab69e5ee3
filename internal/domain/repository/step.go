package repository

import (
	"context"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// StepRepository is the step ledger: the ordered stages of an operation and
// the authoritative state machine over them. Advance enforces all transition
// rules atomically, including the document gate on completion.
type StepRepository interface {
	GetByID(ctx context.Context, stepID int64) (*model.Step, error)
	CurrentStep(ctx context.Context, operationID int64) (*model.Step, error)
	NextPendingStep(ctx context.Context, operationID int64) (*model.Step, error)
	Advance(ctx context.Context, operationID, stepID int64, target model.StepStatus) (*model.Step, error)
}
