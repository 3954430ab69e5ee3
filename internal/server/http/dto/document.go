package dto

import "time"

// ReviewRequest describes a reviewer decision payload.
type ReviewRequest struct {
	Decision string `json:"decision"`
	Notes    string `json:"notes"`
}

// DocumentResponse describes a document attached to a step.
type DocumentResponse struct {
	ID           int64     `json:"id"`
	StepID       int64     `json:"step_id"`
	OperationID  int64     `json:"operation_id"`
	UploaderID   int64     `json:"uploader_id"`
	UploaderRole string    `json:"uploader_role"`
	DocumentType string    `json:"document_type"`
	URL          string    `json:"url"`
	FileName     string    `json:"file_name"`
	FileSize     int64     `json:"file_size"`
	MimeType     string    `json:"mime_type"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
