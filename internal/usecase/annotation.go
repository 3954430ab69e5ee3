package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/solanera/ventaflow/internal/domain/errors"
	"github.com/solanera/ventaflow/internal/domain/model"
	"github.com/solanera/ventaflow/internal/domain/repository"
)

// AnnotationUseCase manages the append-only comment trail per step.
type AnnotationUseCase struct {
	comments repository.CommentRepository
}

// NewAnnotationUseCase constructs AnnotationUseCase.
func NewAnnotationUseCase(comments repository.CommentRepository) *AnnotationUseCase {
	return &AnnotationUseCase{comments: comments}
}

// Add appends a comment to a step. Comments are accepted regardless of step
// status, including on completed steps.
func (u *AnnotationUseCase) Add(ctx context.Context, stepID, authorID int64, authorName, content string, isInternal bool) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainErrors.ErrEmptyContent
	}
	return u.comments.Add(ctx, stepID, authorID, authorName, content, isInternal)
}

// ListForStep returns the step's comments, newest first.
func (u *AnnotationUseCase) ListForStep(ctx context.Context, stepID int64) ([]model.Comment, error) {
	return u.comments.ListForStep(ctx, stepID)
}
