package model

import "time"

// Comment is an append-only annotation on a step. Comments carry no gating
// semantics and may be added regardless of step status.
type Comment struct {
	ID         int64
	StepID     int64
	AuthorID   int64
	AuthorName string
	Content    string
	IsInternal bool
	CreatedAt  time.Time
}
