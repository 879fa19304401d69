package usecase

import (
	"context"

	"taskscribe/internal/draft"
	repo "taskscribe/internal/draft/repository"
	"taskscribe/internal/model"
)

// MarkSubmitted records the destination platform on a draft after a
// successful submission.
func (uc *implUseCase) MarkSubmitted(ctx context.Context, sc model.Scope, id string, platform model.Platform) error {
	if !model.SupportedPlatforms[platform] {
		return draft.ErrInvalidPlatform
	}

	d, err := uc.repo.MarkDraftSubmitted(ctx, repo.MarkSubmittedOptions{
		ID:       id,
		UserID:   sc.UserID,
		Platform: platform,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MarkSubmitted MarkDraftSubmitted: %v", err)
		return err
	}
	if d.ID == "" {
		return draft.ErrDraftNotFound
	}
	return nil
}
