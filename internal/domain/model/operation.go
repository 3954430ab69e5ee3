package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationStatus is derived from the statuses of the operation's steps,
// never stored on its own.
type OperationStatus string

const (
	OperationStatusDraft     OperationStatus = "draft"
	OperationStatusActive    OperationStatus = "active"
	OperationStatusCompleted OperationStatus = "completed"
)

// Operation describes one purchase transaction for one buyer.
type Operation struct {
	ID          int64
	BuyerID     int64
	TotalAmount decimal.Decimal
	Currency    string
	Status      OperationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DeriveOperationStatus computes the overall status from the step ledger:
// completed when every step completed, draft until any step leaves pending.
func DeriveOperationStatus(steps []Step) OperationStatus {
	if len(steps) == 0 {
		return OperationStatusDraft
	}
	allCompleted := true
	anyTouched := false
	for _, s := range steps {
		if s.Status != StepStatusCompleted {
			allCompleted = false
		}
		if s.Status != StepStatusPending {
			anyTouched = true
		}
	}
	if allCompleted {
		return OperationStatusCompleted
	}
	if anyTouched {
		return OperationStatusActive
	}
	return OperationStatusDraft
}
