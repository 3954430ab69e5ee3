package cache

import (
	"context"

	"github.com/solanera/ventaflow/internal/domain/model"
)

// StepCache holds display listings per step. Staleness is acceptable for
// display; gating decisions never read from here.
type StepCache interface {
	GetDocuments(ctx context.Context, stepID int64) ([]model.Document, bool)
	SetDocuments(ctx context.Context, stepID int64, docs []model.Document)
	GetComments(ctx context.Context, stepID int64) ([]model.Comment, bool)
	SetComments(ctx context.Context, stepID int64, comments []model.Comment)
	InvalidateStep(ctx context.Context, stepID int64)
}

// Noop is used when no cache backend is configured.
type Noop struct{}

func (Noop) GetDocuments(context.Context, int64) ([]model.Document, bool) { return nil, false }
func (Noop) SetDocuments(context.Context, int64, []model.Document)        {}
func (Noop) GetComments(context.Context, int64) ([]model.Comment, bool)   { return nil, false }
func (Noop) SetComments(context.Context, int64, []model.Comment)          {}
func (Noop) InvalidateStep(context.Context, int64)                        {}
