package test

import (
	"context"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// DocStoreStub stands in for the blob document store client.
type DocStoreStub struct {
	StoreFn func(context.Context, string, string, []byte) (model.FileReference, error)
	Stored  []string
	Err     error
}

// Store records the file name and returns a synthetic reference.
func (s *DocStoreStub) Store(ctx context.Context, fileName, mimeType string, content []byte) (model.FileReference, error) {
	if s.StoreFn != nil {
		return s.StoreFn(ctx, fileName, mimeType, content)
	}
	if s.Err != nil {
		return model.FileReference{}, s.Err
	}
	s.Stored = append(s.Stored, fileName)
	return model.FileReference{
		URL:      "blob://" + fileName,
		FileName: fileName,
		FileSize: int64(len(content)),
		MimeType: mimeType,
	}, nil
}

// StepCacheStub records cache traffic and serves preloaded listings.
type StepCacheStub struct {
	Documents   map[int64][]model.Document
	Comments    map[int64][]model.Comment
	Invalidated []int64
	DocSets     []int64
	CommentSets []int64
}

// NewStepCacheStub constructs stub cache with initialized maps.
func NewStepCacheStub() *StepCacheStub {
	return &StepCacheStub{
		Documents: make(map[int64][]model.Document),
		Comments:  make(map[int64][]model.Comment),
	}
}

// GetDocuments returns a preloaded listing when present.
func (s *StepCacheStub) GetDocuments(ctx context.Context, stepID int64) ([]model.Document, bool) {
	docs, ok := s.Documents[stepID]
	return docs, ok
}

// SetDocuments stores the listing and records the write.
func (s *StepCacheStub) SetDocuments(ctx context.Context, stepID int64, docs []model.Document) {
	s.Documents[stepID] = docs
	s.DocSets = append(s.DocSets, stepID)
}

// GetComments returns a preloaded listing when present.
func (s *StepCacheStub) GetComments(ctx context.Context, stepID int64) ([]model.Comment, bool) {
	comments, ok := s.Comments[stepID]
	return comments, ok
}

// SetComments stores the listing and records the write.
func (s *StepCacheStub) SetComments(ctx context.Context, stepID int64, comments []model.Comment) {
	s.Comments[stepID] = comments
	s.CommentSets = append(s.CommentSets, stepID)
}

// InvalidateStep drops both listings and records the invalidation.
func (s *StepCacheStub) InvalidateStep(ctx context.Context, stepID int64) {
	delete(s.Documents, stepID)
	delete(s.Comments, stepID)
	s.Invalidated = append(s.Invalidated, stepID)
}
