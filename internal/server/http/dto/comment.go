package dto

import "time"

// CommentRequest describes a new step annotation payload.
type CommentRequest struct {
	Content    string `json:"content"`
	IsInternal bool   `json:"is_internal"`
}

// CommentResponse describes a step annotation.
type CommentResponse struct {
	ID         int64     `json:"id"`
	StepID     int64     `json:"step_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	IsInternal bool      `json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}
