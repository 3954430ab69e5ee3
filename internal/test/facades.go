package test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/solanera/ventaflow/internal/adapter/identity"
	"github.com/solanera/ventaflow/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ResolveFn      func(string) (identity.Identity, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, email, password, displayName string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email, password, displayName)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return "token", nil
}

// ResolveIdentity returns the configured identity for the token.
func (s AuthFacadeStub) ResolveIdentity(token string) (identity.Identity, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(token)
	}
	return identity.Identity{UserID: 1, Role: model.UserRoleBuyer, DisplayName: "stub"}, nil
}

// OperationFacadeStub provides controllable behaviour for operation endpoints.
type OperationFacadeStub struct {
	CreateFn      func(context.Context, int64, decimal.Decimal, string, []string) (*model.Operation, []model.Step, error)
	OperationFn   func(context.Context, int64) (*model.Operation, []model.Step, error)
	ListFn        func(context.Context, int64) ([]model.Operation, error)
	CurrentFn     func(context.Context, int64) (*model.Step, error)
	StartNextFn   func(context.Context, int64) (*model.Step, error)
	CompleteCurFn func(context.Context, int64) (*model.Step, error)
}

// CreateOperation delegates to the override or returns a default operation.
func (s OperationFacadeStub) CreateOperation(ctx context.Context, buyerID int64, amount decimal.Decimal, currency string, stepNames []string) (*model.Operation, []model.Step, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, buyerID, amount, currency, stepNames)
	}
	op := &model.Operation{ID: 1, BuyerID: buyerID, TotalAmount: amount, Currency: currency, Status: model.OperationStatusDraft}
	steps := make([]model.Step, 0, len(stepNames))
	for i, name := range stepNames {
		steps = append(steps, model.Step{ID: int64(i + 1), OperationID: 1, StepOrder: i + 1, StepName: name, Status: model.StepStatusPending})
	}
	return op, steps, nil
}

// Operation returns a configured operation with its steps.
func (s OperationFacadeStub) Operation(ctx context.Context, id int64) (*model.Operation, []model.Step, error) {
	if s.OperationFn != nil {
		return s.OperationFn(ctx, id)
	}
	return &model.Operation{ID: id, BuyerID: 1, Status: model.OperationStatusDraft}, nil, nil
}

// BuyerOperations returns predefined operations for given buyer.
func (s OperationFacadeStub) BuyerOperations(ctx context.Context, buyerID int64) ([]model.Operation, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, buyerID)
	}
	return []model.Operation{{ID: 1, BuyerID: buyerID}}, nil
}

// CurrentStep returns the configured active step.
func (s OperationFacadeStub) CurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	if s.CurrentFn != nil {
		return s.CurrentFn(ctx, operationID)
	}
	return &model.Step{ID: 1, OperationID: operationID, StepOrder: 1, Status: model.StepStatusInProgress}, nil
}

// StartNextStep delegates to the override or reports the first step started.
func (s OperationFacadeStub) StartNextStep(ctx context.Context, operationID int64) (*model.Step, error) {
	if s.StartNextFn != nil {
		return s.StartNextFn(ctx, operationID)
	}
	return &model.Step{ID: 1, OperationID: operationID, StepOrder: 1, Status: model.StepStatusInProgress}, nil
}

// CompleteCurrentStep delegates to the override or reports completion.
func (s OperationFacadeStub) CompleteCurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	if s.CompleteCurFn != nil {
		return s.CompleteCurFn(ctx, operationID)
	}
	return &model.Step{ID: 1, OperationID: operationID, StepOrder: 1, Status: model.StepStatusCompleted}, nil
}

// DocumentFacadeStub simulates document registry operations.
type DocumentFacadeStub struct {
	UploadFn func(context.Context, int64, int64, identity.Identity, string, string, string, []byte) (*model.Document, error)
	ReviewFn func(context.Context, int64, model.ReviewDecision, string) (*model.Document, error)
	ListFn   func(context.Context, int64) ([]model.Document, error)
}

// UploadDocument delegates to the override or returns a fresh document.
func (s DocumentFacadeStub) UploadDocument(ctx context.Context, operationID, stepID int64, ident identity.Identity, documentType, fileName, mimeType string, content []byte) (*model.Document, error) {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, operationID, stepID, ident, documentType, fileName, mimeType, content)
	}
	return &model.Document{
		ID:           1,
		StepID:       stepID,
		OperationID:  operationID,
		UploaderID:   ident.UserID,
		UploaderRole: model.UploaderRole(ident.Role),
		DocumentType: documentType,
		File:         model.FileReference{URL: "blob://" + fileName, FileName: fileName, MimeType: mimeType, FileSize: int64(len(content))},
		Status:       model.DocumentStatusUploaded,
	}, nil
}

// ReviewDocument delegates to the override or returns the decided document.
func (s DocumentFacadeStub) ReviewDocument(ctx context.Context, documentID int64, decision model.ReviewDecision, notes string) (*model.Document, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, documentID, decision, notes)
	}
	return &model.Document{ID: documentID, Status: model.DocumentStatus(decision), Notes: notes}, nil
}

// StepDocuments returns configured documents for a step.
func (s DocumentFacadeStub) StepDocuments(ctx context.Context, stepID int64) ([]model.Document, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, stepID)
	}
	return []model.Document{{ID: 1, StepID: stepID, Status: model.DocumentStatusUploaded}}, nil
}

// CommentFacadeStub simulates annotation log operations.
type CommentFacadeStub struct {
	AddFn  func(context.Context, int64, identity.Identity, string, bool) (*model.Comment, error)
	ListFn func(context.Context, int64) ([]model.Comment, error)
}

// AddComment delegates to the override or returns a fresh comment.
func (s CommentFacadeStub) AddComment(ctx context.Context, stepID int64, ident identity.Identity, content string, isInternal bool) (*model.Comment, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, stepID, ident, content, isInternal)
	}
	return &model.Comment{ID: 1, StepID: stepID, AuthorID: ident.UserID, AuthorName: ident.DisplayName, Content: content, IsInternal: isInternal}, nil
}

// StepComments returns configured comments for a step.
func (s CommentFacadeStub) StepComments(ctx context.Context, stepID int64) ([]model.Comment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, stepID)
	}
	return []model.Comment{{ID: 1, StepID: stepID, Content: "ok"}}, nil
}

// WorkflowFacadeStub aggregates facade dependencies for HTTP layer tests.
type WorkflowFacadeStub struct {
	AuthFacadeStub
	OperationFacadeStub
	DocumentFacadeStub
	CommentFacadeStub
}
