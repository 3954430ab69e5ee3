package errors

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrOutOfOrderTransition = errors.New("step transition out of order")
	ErrInvalidTransition    = errors.New("invalid step transition")
	ErrDocumentsNotReady    = errors.New("step documents not ready")
	ErrStepNotActive        = errors.New("step not active")
	ErrDocumentPending      = errors.New("document pending review")
	ErrAlreadyReviewed      = errors.New("document already reviewed")
	ErrEmptyContent         = errors.New("empty comment content")
	ErrRejectionNotes       = errors.New("rejection requires notes")
	ErrEmptyStepPlan        = errors.New("operation requires at least one step")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrAlreadyExists        = errors.New("already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
)
