package usecase

import (
	"context"

	"taskscribe/internal/draft"
	repo "taskscribe/internal/draft/repository"
	"taskscribe/internal/model"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// List returns the caller's drafts, most recently updated first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input draft.ListDraftsInput) (draft.ListDraftsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	drafts, total, err := uc.repo.ListDrafts(ctx, repo.ListDraftsOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListDrafts: %v", err)
		return draft.ListDraftsOutput{}, err
	}

	return draft.ListDraftsOutput{
		Drafts: drafts,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
