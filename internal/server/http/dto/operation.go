package dto

import "time"

// CreateOperationRequest describes a new purchase operation with its step plan.
type CreateOperationRequest struct {
	BuyerID     int64    `json:"buyer_id"`
	TotalAmount string   `json:"total_amount"`
	Currency    string   `json:"currency"`
	Steps       []string `json:"steps"`
}

// StepResponse describes one stage of an operation.
type StepResponse struct {
	ID        int64     `json:"id"`
	StepOrder int       `json:"step_order"`
	StepName  string    `json:"step_name"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OperationResponse describes an operation with its step ledger.
type OperationResponse struct {
	ID          int64          `json:"id"`
	BuyerID     int64          `json:"buyer_id"`
	TotalAmount string         `json:"total_amount"`
	Currency    string         `json:"currency"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	Steps       []StepResponse `json:"steps,omitempty"`
}
