package usecase

import (
	"context"
	"strings"

	"taskscribe/internal/draft"
	repo "taskscribe/internal/draft/repository"
	"taskscribe/internal/model"
)

// Detail retrieves a single draft owned by the caller. A draft that does not
// exist and a draft owned by someone else are indistinguishable to the caller.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (draft.DetailDraftOutput, error) {
	d, err := uc.repo.GetOneDraft(ctx, repo.GetOneDraftOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneDraft: %v", err)
		return draft.DetailDraftOutput{}, err
	}
	if d.ID == "" {
		return draft.DetailDraftOutput{}, draft.ErrDraftNotFound
	}
	return draft.DetailDraftOutput{Draft: d}, nil
}

// Update replaces the markdown of an existing draft owned by the caller.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input draft.UpdateDraftInput) (draft.UpdateDraftOutput, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return draft.UpdateDraftOutput{}, draft.ErrEmptyMarkdown
	}

	d, err := uc.repo.UpdateDraftMarkdown(ctx, repo.UpdateDraftOptions{
		ID:       input.ID,
		UserID:   sc.UserID,
		Markdown: input.Markdown,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateDraftMarkdown: %v", err)
		return draft.UpdateDraftOutput{}, err
	}
	if d.ID == "" {
		return draft.UpdateDraftOutput{}, draft.ErrDraftNotFound
	}
	return draft.UpdateDraftOutput{Draft: d}, nil
}
