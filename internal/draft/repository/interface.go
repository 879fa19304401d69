package repository

import (
	"context"

	"taskscribe/internal/model"
)

// Repository defines all data access methods for the Draft entity.
// Not-found is reported as a zero-value Draft (ID == ""), never as an error,
// so the use case layer owns the not-found policy.
type Repository interface {
	CreateDraft(ctx context.Context, opt CreateDraftOptions) (model.Draft, error)
	GetOneDraft(ctx context.Context, opt GetOneDraftOptions) (model.Draft, error)
	ListDrafts(ctx context.Context, opt ListDraftsOptions) ([]model.Draft, int, error)
	UpdateDraftMarkdown(ctx context.Context, opt UpdateDraftOptions) (model.Draft, error)
	MarkDraftSubmitted(ctx context.Context, opt MarkSubmittedOptions) (model.Draft, error)
}
