package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	testhelpers "github.com/solanera/ventaflow/internal/test"
)

func TestOperationUseCaseCreateRejectsNegativeAmount(t *testing.T) {
	repo := &testhelpers.OperationRepositoryStub{}
	uc := NewOperationUseCase(repo)

	_, _, err := uc.Create(context.Background(), 1, decimal.NewFromInt(-1), "EUR", []string{"Reservation"})
	if err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if len(repo.Created) != 0 {
		t.Fatal("repository should not be called for invalid amount")
	}
}

func TestOperationUseCaseCreateRejectsBlankCurrency(t *testing.T) {
	uc := NewOperationUseCase(&testhelpers.OperationRepositoryStub{})

	if _, _, err := uc.Create(context.Background(), 1, decimal.NewFromInt(100), "  ", []string{"Reservation"}); err != domainErrors.ErrInvalidAmount {
		t.Fatalf("expected invalid amount, got %v", err)
	}
}

func TestOperationUseCaseCreateRejectsEmptyPlan(t *testing.T) {
	uc := NewOperationUseCase(&testhelpers.OperationRepositoryStub{})

	cases := []struct {
		name  string
		steps []string
	}{
		{"nil plan", nil},
		{"blank names only", []string{"", "   "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Create(context.Background(), 1, decimal.NewFromInt(100), "EUR", tc.steps); err != domainErrors.ErrEmptyStepPlan {
				t.Fatalf("expected empty step plan, got %v", err)
			}
		})
	}
}

func TestOperationUseCaseCreateTrimsPlan(t *testing.T) {
	repo := &testhelpers.OperationRepositoryStub{}
	uc := NewOperationUseCase(repo)

	op, steps, err := uc.Create(context.Background(), 7, decimal.NewFromInt(250000), "EUR", []string{" Reservation ", "", "Payment"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.BuyerID != 7 {
		t.Fatalf("unexpected operation: %+v", op)
	}
	if len(steps) != 2 || steps[0].StepName != "Reservation" || steps[1].StepName != "Payment" {
		t.Fatalf("unexpected steps: %+v", steps)
	}
	if len(repo.Created) != 1 || len(repo.Created[0].StepNames) != 2 {
		t.Fatalf("unexpected repository call: %+v", repo.Created)
	}
}

func TestOperationUseCaseGetDerivesStatus(t *testing.T) {
	repo := &testhelpers.OperationRepositoryStub{
		Operations: []model.Operation{{ID: 3, BuyerID: 7}},
		Steps: map[int64][]model.Step{
			3: {
				{ID: 31, OperationID: 3, StepOrder: 1, Status: model.StepStatusCompleted},
				{ID: 32, OperationID: 3, StepOrder: 2, Status: model.StepStatusInProgress},
			},
		},
	}
	uc := NewOperationUseCase(repo)

	op, steps, err := uc.Get(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Status != model.OperationStatusActive {
		t.Fatalf("expected active status, got %s", op.Status)
	}
	if len(steps) != 2 {
		t.Fatalf("unexpected steps: %+v", steps)
	}
}

func TestOperationUseCaseGetNotFound(t *testing.T) {
	uc := NewOperationUseCase(&testhelpers.OperationRepositoryStub{})

	if _, _, err := uc.Get(context.Background(), 9); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestOperationUseCaseListByBuyer(t *testing.T) {
	repo := &testhelpers.OperationRepositoryStub{
		Operations: []model.Operation{
			{ID: 3, BuyerID: 7},
			{ID: 4, BuyerID: 7},
		},
		Steps: map[int64][]model.Step{
			3: {{ID: 31, OperationID: 3, StepOrder: 1, Status: model.StepStatusCompleted}},
			4: {{ID: 41, OperationID: 4, StepOrder: 1, Status: model.StepStatusPending}},
		},
	}
	uc := NewOperationUseCase(repo)

	ops, err := uc.ListByBuyer(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("unexpected operations: %+v", ops)
	}
	if ops[0].Status != model.OperationStatusCompleted || ops[1].Status != model.OperationStatusDraft {
		t.Fatalf("unexpected derived statuses: %s %s", ops[0].Status, ops[1].Status)
	}
}

func TestOperationUseCaseListByBuyerPropagatesError(t *testing.T) {
	repo := &testhelpers.OperationRepositoryStub{
		ListByBuyerFn: func(context.Context, int64) ([]model.Operation, error) {
			return nil, errors.New("db down")
		},
	}
	uc := NewOperationUseCase(repo)

	if _, err := uc.ListByBuyer(context.Background(), 7); err == nil {
		t.Fatal("expected error")
	}
}
