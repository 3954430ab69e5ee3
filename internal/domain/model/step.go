package model

import "time"

// StepStatus describes the lifecycle of a single transaction stage.
type StepStatus string

const (
	StepStatusPending    StepStatus = "pending"
	StepStatusInProgress StepStatus = "in_progress"
	StepStatusCompleted  StepStatus = "completed"
)

// Step is one ordered stage of an operation's administrative process.
// Within one operation at most one step is in_progress, and a step may
// only become in_progress once every step with a smaller order completed.
type Step struct {
	ID          int64
	OperationID int64
	StepOrder   int
	StepName    string
	Status      StepStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
