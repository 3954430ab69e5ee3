package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
	testhelpers "github.com/solanera/ventaflow/internal/test"
)

func validSubmit() repository.SubmitParams {
	return repository.SubmitParams{
		OperationID:  3,
		StepID:       31,
		UploaderID:   7,
		UploaderRole: model.UploaderRoleBuyer,
		DocumentType: "boleto_reserva",
		File: model.FileReference{
			URL:      "blob://boleto.pdf",
			FileName: "boleto.pdf",
			FileSize: 1024,
			MimeType: "application/pdf",
		},
	}
}

func TestRegistryUseCaseSubmit(t *testing.T) {
	repo := &testhelpers.DocumentRepositoryStub{}
	uc := NewRegistryUseCase(repo)

	doc, err := uc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Status != model.DocumentStatusUploaded {
		t.Fatalf("unexpected document: %+v", doc)
	}
	if len(repo.Submitted) != 1 {
		t.Fatalf("unexpected submissions: %+v", repo.Submitted)
	}
}

func TestRegistryUseCaseSubmitValidation(t *testing.T) {
	repo := &testhelpers.DocumentRepositoryStub{}
	uc := NewRegistryUseCase(repo)

	t.Run("blank document type", func(t *testing.T) {
		params := validSubmit()
		params.DocumentType = "   "
		if _, err := uc.Submit(context.Background(), params); err != domainErrors.ErrEmptyContent {
			t.Fatalf("expected empty content, got %v", err)
		}
	})

	t.Run("missing file reference", func(t *testing.T) {
		params := validSubmit()
		params.File.URL = ""
		if _, err := uc.Submit(context.Background(), params); err != domainErrors.ErrEmptyContent {
			t.Fatalf("expected empty content, got %v", err)
		}
	})

	if len(repo.Submitted) != 0 {
		t.Fatal("repository should not be called for invalid submissions")
	}
}

func TestRegistryUseCaseSubmitPropagatesPending(t *testing.T) {
	repo := &testhelpers.DocumentRepositoryStub{
		SubmitFn: func(context.Context, repository.SubmitParams) (*model.Document, error) {
			return nil, domainErrors.ErrDocumentPending
		},
	}
	uc := NewRegistryUseCase(repo)

	if _, err := uc.Submit(context.Background(), validSubmit()); !errors.Is(err, domainErrors.ErrDocumentPending) {
		t.Fatalf("expected document pending, got %v", err)
	}
}

func TestRegistryUseCaseReview(t *testing.T) {
	repo := &testhelpers.DocumentRepositoryStub{
		Documents: []model.Document{{ID: 51, StepID: 31, Status: model.DocumentStatusUploaded}},
	}
	uc := NewRegistryUseCase(repo)

	doc, err := uc.Review(context.Background(), 51, model.ReviewDecisionValidated, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Status != model.DocumentStatusValidated {
		t.Fatalf("unexpected document: %+v", doc)
	}

	if _, err := uc.Review(context.Background(), 51, model.ReviewDecisionValidated, ""); !errors.Is(err, domainErrors.ErrAlreadyReviewed) {
		t.Fatalf("expected already reviewed, got %v", err)
	}
}

func TestRegistryUseCaseReviewRejectionRequiresNotes(t *testing.T) {
	repo := &testhelpers.DocumentRepositoryStub{
		Documents: []model.Document{{ID: 51, StepID: 31, Status: model.DocumentStatusUploaded}},
	}
	uc := NewRegistryUseCase(repo)

	if _, err := uc.Review(context.Background(), 51, model.ReviewDecisionRejected, "   "); err != domainErrors.ErrRejectionNotes {
		t.Fatalf("expected rejection notes error, got %v", err)
	}

	doc, err := uc.Review(context.Background(), 51, model.ReviewDecisionRejected, " Falta firma ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Status != model.DocumentStatusRejected || doc.Notes != "Falta firma" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestRegistryUseCaseReviewUnknownDecision(t *testing.T) {
	uc := NewRegistryUseCase(&testhelpers.DocumentRepositoryStub{})

	if _, err := uc.Review(context.Background(), 51, model.ReviewDecision("maybe"), ""); err != domainErrors.ErrInvalidTransition {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestRegistryUseCaseStepReadiness(t *testing.T) {
	repo := &testhelpers.DocumentRepositoryStub{
		Documents: []model.Document{
			{ID: 51, StepID: 31, Status: model.DocumentStatusValidated},
			{ID: 52, StepID: 32, Status: model.DocumentStatusUploaded},
		},
	}
	uc := NewRegistryUseCase(repo)

	ready, err := uc.IsStepReady(context.Background(), 31)
	if err != nil || !ready {
		t.Fatalf("expected ready step, got ready=%v err=%v", ready, err)
	}

	ready, err = uc.IsStepReady(context.Background(), 32)
	if err != nil || ready {
		t.Fatalf("expected not ready, got ready=%v err=%v", ready, err)
	}

	// An empty step has nothing validated and fails the gate.
	ready, err = uc.IsStepReady(context.Background(), 33)
	if err != nil || ready {
		t.Fatalf("expected not ready for empty step, got ready=%v err=%v", ready, err)
	}
}

func TestRegistryUseCaseListAndGet(t *testing.T) {
	repo := &testhelpers.DocumentRepositoryStub{
		Documents: []model.Document{
			{ID: 51, StepID: 31, Status: model.DocumentStatusValidated},
			{ID: 52, StepID: 31, Status: model.DocumentStatusRejected},
		},
	}
	uc := NewRegistryUseCase(repo)

	docs, err := uc.ListForStep(context.Background(), 31)
	if err != nil || len(docs) != 2 {
		t.Fatalf("unexpected result: %v err=%v", docs, err)
	}

	doc, err := uc.Get(context.Background(), 52)
	if err != nil || doc.Status != model.DocumentStatusRejected {
		t.Fatalf("unexpected document: %+v err=%v", doc, err)
	}

	if _, err := uc.Get(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
