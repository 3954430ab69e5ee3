package repository

import (
	"context"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// SubmitParams carries everything required to attach a document to a step.
type SubmitParams struct {
	OperationID  int64
	StepID       int64
	UploaderID   int64
	UploaderRole model.UploaderRole
	DocumentType string
	File         model.FileReference
}

// DocumentRepository is the document registry: documents attached to steps,
// the single-outstanding-document rule, and step readiness.
type DocumentRepository interface {
	Submit(ctx context.Context, params SubmitParams) (*model.Document, error)
	Review(ctx context.Context, documentID int64, decision model.ReviewDecision, notes string) (*model.Document, error)
	IsStepReady(ctx context.Context, stepID int64) (bool, error)
	ListForStep(ctx context.Context, stepID int64) ([]model.Document, error)
	GetByID(ctx context.Context, documentID int64) (*model.Document, error)
}
