package repository

import (
	"context"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// CommentRepository is the annotation log: append-only comments per step.
type CommentRepository interface {
	Add(ctx context.Context, stepID, authorID int64, authorName, content string, isInternal bool) (*model.Comment, error)
	ListForStep(ctx context.Context, stepID int64) ([]model.Comment, error)
}
