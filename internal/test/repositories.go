package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, passwordHash string, role model.UserRole, displayName string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, PasswordHash: passwordHash, Role: role, DisplayName: displayName}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OperationCreateCall records Create invocations on the operation stub.
type OperationCreateCall struct {
	BuyerID   int64
	Amount    decimal.Decimal
	Currency  string
	StepNames []string
}

// OperationRepositoryStub allows tests to customize behaviour.
type OperationRepositoryStub struct {
	CreateFn      func(context.Context, int64, decimal.Decimal, string, []string) (*model.Operation, []model.Step, error)
	GetByIDFn     func(context.Context, int64) (*model.Operation, error)
	ListByBuyerFn func(context.Context, int64) ([]model.Operation, error)
	ListStepsFn   func(context.Context, int64) ([]model.Step, error)

	Created    []OperationCreateCall
	Operations []model.Operation
	Steps      map[int64][]model.Step
}

// Create tracks invocations and returns configured responses.
func (s *OperationRepositoryStub) Create(ctx context.Context, buyerID int64, amount decimal.Decimal, currency string, stepNames []string) (*model.Operation, []model.Step, error) {
	s.Created = append(s.Created, OperationCreateCall{BuyerID: buyerID, Amount: amount, Currency: currency, StepNames: stepNames})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, buyerID, amount, currency, stepNames)
	}
	op := &model.Operation{ID: 1, BuyerID: buyerID, TotalAmount: amount, Currency: currency, Status: model.OperationStatusDraft}
	steps := make([]model.Step, 0, len(stepNames))
	for i, name := range stepNames {
		steps = append(steps, model.Step{ID: int64(i + 1), OperationID: op.ID, StepOrder: i + 1, StepName: name, Status: model.StepStatusPending})
	}
	return op, steps, nil
}

// GetByID returns matched operation either via override or stored slice.
func (s *OperationRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Operation, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, op := range s.Operations {
		if op.ID == id {
			found := op
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByBuyer returns operations from configured slice.
func (s *OperationRepositoryStub) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Operation, error) {
	if s.ListByBuyerFn != nil {
		return s.ListByBuyerFn(ctx, buyerID)
	}
	var out []model.Operation
	for _, op := range s.Operations {
		if op.BuyerID == buyerID {
			out = append(out, op)
		}
	}
	return out, nil
}

// ListSteps returns configured steps for an operation.
func (s *OperationRepositoryStub) ListSteps(ctx context.Context, operationID int64) ([]model.Step, error) {
	if s.ListStepsFn != nil {
		return s.ListStepsFn(ctx, operationID)
	}
	return s.Steps[operationID], nil
}

// StepAdvanceCall records Advance invocations on the step stub.
type StepAdvanceCall struct {
	OperationID int64
	StepID      int64
	Target      model.StepStatus
}

// StepRepositoryStub lets tests control step ledger data.
type StepRepositoryStub struct {
	GetByIDFn         func(context.Context, int64) (*model.Step, error)
	CurrentStepFn     func(context.Context, int64) (*model.Step, error)
	NextPendingStepFn func(context.Context, int64) (*model.Step, error)
	AdvanceFn         func(context.Context, int64, int64, model.StepStatus) (*model.Step, error)

	Steps        []model.Step
	AdvanceCalls []StepAdvanceCall
}

// GetByID returns a matching step from the configured slice.
func (s *StepRepositoryStub) GetByID(ctx context.Context, stepID int64) (*model.Step, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, stepID)
	}
	for _, st := range s.Steps {
		if st.ID == stepID {
			found := st
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CurrentStep returns the operation's in_progress step.
func (s *StepRepositoryStub) CurrentStep(ctx context.Context, operationID int64) (*model.Step, error) {
	if s.CurrentStepFn != nil {
		return s.CurrentStepFn(ctx, operationID)
	}
	for _, st := range s.Steps {
		if st.OperationID == operationID && st.Status == model.StepStatusInProgress {
			found := st
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// NextPendingStep returns the lowest-order pending step.
func (s *StepRepositoryStub) NextPendingStep(ctx context.Context, operationID int64) (*model.Step, error) {
	if s.NextPendingStepFn != nil {
		return s.NextPendingStepFn(ctx, operationID)
	}
	var best *model.Step
	for i := range s.Steps {
		st := s.Steps[i]
		if st.OperationID != operationID || st.Status != model.StepStatusPending {
			continue
		}
		if best == nil || st.StepOrder < best.StepOrder {
			copied := st
			best = &copied
		}
	}
	if best == nil {
		return nil, domainErrors.ErrNotFound
	}
	return best, nil
}

// Advance records invocations and applies the transition in-memory.
func (s *StepRepositoryStub) Advance(ctx context.Context, operationID, stepID int64, target model.StepStatus) (*model.Step, error) {
	s.AdvanceCalls = append(s.AdvanceCalls, StepAdvanceCall{OperationID: operationID, StepID: stepID, Target: target})
	if s.AdvanceFn != nil {
		return s.AdvanceFn(ctx, operationID, stepID, target)
	}
	for i := range s.Steps {
		if s.Steps[i].ID == stepID && s.Steps[i].OperationID == operationID {
			s.Steps[i].Status = target
			found := s.Steps[i]
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// DocumentRepositoryStub lets tests control registry behaviour.
type DocumentRepositoryStub struct {
	SubmitFn      func(context.Context, repository.SubmitParams) (*model.Document, error)
	ReviewFn      func(context.Context, int64, model.ReviewDecision, string) (*model.Document, error)
	IsStepReadyFn func(context.Context, int64) (bool, error)
	ListForStepFn func(context.Context, int64) ([]model.Document, error)
	GetByIDFn     func(context.Context, int64) (*model.Document, error)

	Submitted []repository.SubmitParams
	Documents []model.Document
}

// Submit records invocations and returns a stored document.
func (s *DocumentRepositoryStub) Submit(ctx context.Context, params repository.SubmitParams) (*model.Document, error) {
	s.Submitted = append(s.Submitted, params)
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, params)
	}
	for _, d := range s.Documents {
		if d.StepID == params.StepID && d.Status == model.DocumentStatusUploaded {
			return nil, domainErrors.ErrDocumentPending
		}
	}
	doc := &model.Document{
		ID:           int64(len(s.Documents) + 1),
		StepID:       params.StepID,
		OperationID:  params.OperationID,
		UploaderID:   params.UploaderID,
		UploaderRole: params.UploaderRole,
		DocumentType: params.DocumentType,
		File:         params.File,
		Status:       model.DocumentStatusUploaded,
		CreatedAt:    time.Now(),
	}
	s.Documents = append(s.Documents, *doc)
	return doc, nil
}

// Review applies the decision to a stored document.
func (s *DocumentRepositoryStub) Review(ctx context.Context, documentID int64, decision model.ReviewDecision, notes string) (*model.Document, error) {
	if s.ReviewFn != nil {
		return s.ReviewFn(ctx, documentID, decision, notes)
	}
	for i := range s.Documents {
		if s.Documents[i].ID != documentID {
			continue
		}
		if s.Documents[i].Status != model.DocumentStatusUploaded {
			return nil, domainErrors.ErrAlreadyReviewed
		}
		s.Documents[i].Status = model.DocumentStatus(decision)
		s.Documents[i].Notes = notes
		found := s.Documents[i]
		return &found, nil
	}
	return nil, domainErrors.ErrNotFound
}

// IsStepReady evaluates the document gate against stored documents.
func (s *DocumentRepositoryStub) IsStepReady(ctx context.Context, stepID int64) (bool, error) {
	if s.IsStepReadyFn != nil {
		return s.IsStepReadyFn(ctx, stepID)
	}
	validated := 0
	for _, d := range s.Documents {
		if d.StepID != stepID {
			continue
		}
		switch d.Status {
		case model.DocumentStatusUploaded:
			return false, nil
		case model.DocumentStatusValidated:
			validated++
		}
	}
	return validated > 0, nil
}

// ListForStep returns stored documents for one step.
func (s *DocumentRepositoryStub) ListForStep(ctx context.Context, stepID int64) ([]model.Document, error) {
	if s.ListForStepFn != nil {
		return s.ListForStepFn(ctx, stepID)
	}
	var out []model.Document
	for _, d := range s.Documents {
		if d.StepID == stepID {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetByID returns one stored document.
func (s *DocumentRepositoryStub) GetByID(ctx context.Context, documentID int64) (*model.Document, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, documentID)
	}
	for _, d := range s.Documents {
		if d.ID == documentID {
			found := d
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CommentRepositoryStub stores comments in-memory for tests.
type CommentRepositoryStub struct {
	AddFn         func(context.Context, int64, int64, string, string, bool) (*model.Comment, error)
	ListForStepFn func(context.Context, int64) ([]model.Comment, error)

	Comments []model.Comment
}

// Add appends a comment to the stub's slice.
func (s *CommentRepositoryStub) Add(ctx context.Context, stepID, authorID int64, authorName, content string, isInternal bool) (*model.Comment, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, stepID, authorID, authorName, content, isInternal)
	}
	comment := model.Comment{
		ID:         int64(len(s.Comments) + 1),
		StepID:     stepID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Content:    content,
		IsInternal: isInternal,
		CreatedAt:  time.Now(),
	}
	s.Comments = append(s.Comments, comment)
	return &comment, nil
}

// ListForStep returns stored comments for one step, newest first.
func (s *CommentRepositoryStub) ListForStep(ctx context.Context, stepID int64) ([]model.Comment, error) {
	if s.ListForStepFn != nil {
		return s.ListForStepFn(ctx, stepID)
	}
	var out []model.Comment
	for i := len(s.Comments) - 1; i >= 0; i-- {
		if s.Comments[i].StepID == stepID {
			out = append(out, s.Comments[i])
		}
	}
	return out, nil
}
