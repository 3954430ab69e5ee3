package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/solanera/ventaflow/internal/adapter/cache"
	"github.com/solanera/ventaflow/internal/adapter/docstore"
	"github.com/solanera/ventaflow/internal/adapter/identity"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
	"github.com/solanera/ventaflow/internal/usecase"
)

// WorkflowFacade is the coordinator: the only entry point callers use to
// mutate the step ledger, the document registry, and the annotation log.
// Each write is a single logical transaction carried out by the storage
// layer; the facade sequences collaborator calls and keeps the display
// cache coherent.
type WorkflowFacade struct {
	auth        *usecase.AuthUseCase
	operations  *usecase.OperationUseCase
	ledger      *usecase.LedgerUseCase
	registry    *usecase.RegistryUseCase
	annotations *usecase.AnnotationUseCase
	identities  identity.Provider
	files       docstore.Client
	stepCache   cache.StepCache
}

func NewWorkflowFacade(
	auth *usecase.AuthUseCase,
	operations *usecase.OperationUseCase,
	ledger *usecase.LedgerUseCase,
	registry *usecase.RegistryUseCase,
	annotations *usecase.AnnotationUseCase,
	identities identity.Provider,
	files docstore.Client,
	stepCache cache.StepCache,
) *WorkflowFacade {
	return &WorkflowFacade{
		auth:        auth,
		operations:  operations,
		ledger:      ledger,
		registry:    registry,
		annotations: annotations,
		identities:  identities,
		files:       files,
		stepCache:   stepCache,
	}
}

func (f *WorkflowFacade) Register(ctx context.Context, email, password, displayName string) (string, error) {
	_, token, err := f.auth.Register(ctx, email, password, displayName)
	return token, err
}

func (f *WorkflowFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *WorkflowFacade) ResolveIdentity(token string) (identity.Identity, error) {
	return f.identities.Resolve(token)
}

func (f *WorkflowFacade) CreateOperation(ctx context.Context, buyerID int64, amount decimal.Decimal, currency string, stepNames []string) (*model.Operation, []model.Step, error) {
	return f.operations.Create(ctx, buyerID, amount, currency, stepNames)
}

func (f *WorkflowFacade) Operation(ctx context.Context, id int64) (*model.Operation, []model.Step, error) {
	return f.operations.Get(ctx, id)
}

func (f *WorkflowFacade) BuyerOperations(ctx context.Context, buyerID int64) ([]model.Operation, error) {
	return f.operations.ListByBuyer(ctx, buyerID)
}

func (f *WorkflowFacade) CurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	return f.ledger.CurrentStep(ctx, operationID)
}

func (f *WorkflowFacade) StartNextStep(ctx context.Context, operationID int64) (*model.Step, error) {
	return f.ledger.StartNextStep(ctx, operationID)
}

func (f *WorkflowFacade) CompleteCurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	return f.ledger.CompleteCurrentStep(ctx, operationID)
}

// UploadDocument stores the blob first, then records the document against
// the operation's active step. Once the file reference is in hand the
// workflow mutation performs no further external I/O.
func (f *WorkflowFacade) UploadDocument(ctx context.Context, operationID, stepID int64, ident identity.Identity, documentType, fileName, mimeType string, content []byte) (*model.Document, error) {
	ref, err := f.files.Store(ctx, fileName, mimeType, content)
	if err != nil {
		return nil, err
	}

	doc, err := f.registry.Submit(ctx, repository.SubmitParams{
		OperationID:  operationID,
		StepID:       stepID,
		UploaderID:   ident.UserID,
		UploaderRole: model.UploaderRole(ident.Role),
		DocumentType: documentType,
		File:         ref,
	})
	if err != nil {
		return nil, err
	}

	f.stepCache.InvalidateStep(ctx, stepID)
	return doc, nil
}

func (f *WorkflowFacade) ReviewDocument(ctx context.Context, documentID int64, decision model.ReviewDecision, notes string) (*model.Document, error) {
	doc, err := f.registry.Review(ctx, documentID, decision, notes)
	if err != nil {
		return nil, err
	}
	f.stepCache.InvalidateStep(ctx, doc.StepID)
	return doc, nil
}

func (f *WorkflowFacade) AddComment(ctx context.Context, stepID int64, ident identity.Identity, content string, isInternal bool) (*model.Comment, error) {
	comment, err := f.annotations.Add(ctx, stepID, ident.UserID, ident.DisplayName, content, isInternal)
	if err != nil {
		return nil, err
	}
	f.stepCache.InvalidateStep(ctx, stepID)
	return comment, nil
}

// StepDocuments serves the display listing through the cache. Gating never
// reads from here; the document gate re-reads inside the advancing
// transaction.
func (f *WorkflowFacade) StepDocuments(ctx context.Context, stepID int64) ([]model.Document, error) {
	if docs, ok := f.stepCache.GetDocuments(ctx, stepID); ok {
		return docs, nil
	}
	docs, err := f.registry.ListForStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	f.stepCache.SetDocuments(ctx, stepID, docs)
	return docs, nil
}

func (f *WorkflowFacade) StepComments(ctx context.Context, stepID int64) ([]model.Comment, error) {
	if comments, ok := f.stepCache.GetComments(ctx, stepID); ok {
		return comments, nil
	}
	comments, err := f.annotations.ListForStep(ctx, stepID)
	if err != nil {
		return nil, err
	}
	f.stepCache.SetComments(ctx, stepID, comments)
	return comments, nil
}
