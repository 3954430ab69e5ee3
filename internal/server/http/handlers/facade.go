package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/solanera/ventaflow/internal/adapter/identity"
	"github.com/solanera/ventaflow/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password, displayName string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ResolveIdentity(token string) (identity.Identity, error)
}

// OperationFacade exposes operation and step ledger interactions.
type OperationFacade interface {
	CreateOperation(ctx context.Context, buyerID int64, amount decimal.Decimal, currency string, stepNames []string) (*model.Operation, []model.Step, error)
	Operation(ctx context.Context, id int64) (*model.Operation, []model.Step, error)
	BuyerOperations(ctx context.Context, buyerID int64) ([]model.Operation, error)
	CurrentStep(ctx context.Context, operationID int64) (*model.Step, error)
	StartNextStep(ctx context.Context, operationID int64) (*model.Step, error)
	CompleteCurrentStep(ctx context.Context, operationID int64) (*model.Step, error)
}

// DocumentFacade exposes document registry interactions.
type DocumentFacade interface {
	UploadDocument(ctx context.Context, operationID, stepID int64, ident identity.Identity, documentType, fileName, mimeType string, content []byte) (*model.Document, error)
	ReviewDocument(ctx context.Context, documentID int64, decision model.ReviewDecision, notes string) (*model.Document, error)
	StepDocuments(ctx context.Context, stepID int64) ([]model.Document, error)
}

// CommentFacade exposes annotation log interactions.
type CommentFacade interface {
	AddComment(ctx context.Context, stepID int64, ident identity.Identity, content string, isInternal bool) (*model.Comment, error)
	StepComments(ctx context.Context, stepID int64) ([]model.Comment, error)
}

// WorkflowFacade aggregates the full set of operations used across handlers.
type WorkflowFacade interface {
	AuthFacade
	OperationFacade
	DocumentFacade
	CommentFacade
}
