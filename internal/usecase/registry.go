package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
)

// RegistryUseCase manages documents attached to steps.
type RegistryUseCase struct {
	documents repository.DocumentRepository
}

// NewRegistryUseCase constructs RegistryUseCase.
func NewRegistryUseCase(documents repository.DocumentRepository) *RegistryUseCase {
	return &RegistryUseCase{documents: documents}
}

// Submit attaches a new document to the operation's active step.
func (u *RegistryUseCase) Submit(ctx context.Context, params repository.SubmitParams) (*model.Document, error) {
	if strings.TrimSpace(params.DocumentType) == "" {
		return nil, domainErrors.ErrEmptyContent
	}
	if params.File.URL == "" || params.File.FileName == "" {
		return nil, domainErrors.ErrEmptyContent
	}
	return u.documents.Submit(ctx, params)
}

// Review records a reviewer decision on an uploaded document. Rejection
// requires a non-blank reason; the decision is final.
func (u *RegistryUseCase) Review(ctx context.Context, documentID int64, decision model.ReviewDecision, notes string) (*model.Document, error) {
	notes = strings.TrimSpace(notes)
	switch decision {
	case model.ReviewDecisionValidated:
	case model.ReviewDecisionRejected:
		if notes == "" {
			return nil, domainErrors.ErrRejectionNotes
		}
	default:
		return nil, domainErrors.ErrInvalidTransition
	}
	return u.documents.Review(ctx, documentID, decision, notes)
}

// IsStepReady reports whether the step passes the document gate.
func (u *RegistryUseCase) IsStepReady(ctx context.Context, stepID int64) (bool, error) {
	return u.documents.IsStepReady(ctx, stepID)
}

// ListForStep returns the step's documents, newest first.
func (u *RegistryUseCase) ListForStep(ctx context.Context, stepID int64) ([]model.Document, error) {
	return u.documents.ListForStep(ctx, stepID)
}

// Get returns a single document.
func (u *RegistryUseCase) Get(ctx context.Context, documentID int64) (*model.Document, error) {
	return u.documents.GetByID(ctx, documentID)
}
