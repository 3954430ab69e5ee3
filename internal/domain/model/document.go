package model

import "time"

// DocumentStatus describes the review lifecycle of an uploaded document.
type DocumentStatus string

const (
	DocumentStatusUploaded  DocumentStatus = "uploaded"
	DocumentStatusValidated DocumentStatus = "validated"
	DocumentStatusRejected  DocumentStatus = "rejected"
)

// UploaderRole identifies on whose behalf a document was submitted.
type UploaderRole string

const (
	UploaderRoleOrganization UploaderRole = "organization"
	UploaderRoleBuyer        UploaderRole = "buyer"
)

// FileReference points at a blob held by the document store. The workflow
// never inspects file contents, only records the reference.
type FileReference struct {
	URL      string
	FileName string
	FileSize int64
	MimeType string
}

// Document is a file submitted against a step. It transitions exactly once
// from uploaded to either validated or rejected; Notes carries the rejection
// reason and is immutable afterwards.
type Document struct {
	ID           int64
	StepID       int64
	OperationID  int64
	UploaderID   int64
	UploaderRole UploaderRole
	DocumentType string
	File         FileReference
	Status       DocumentStatus
	Notes        string
	CreatedAt    time.Time
}

// ReviewDecision is the outcome a reviewer assigns to an uploaded document.
type ReviewDecision string

const (
	ReviewDecisionValidated ReviewDecision = "validated"
	ReviewDecisionRejected  ReviewDecision = "rejected"
)
