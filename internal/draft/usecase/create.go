package usecase

import (
	"context"
	"strings"

	"taskscribe/internal/draft"
	repo "taskscribe/internal/draft/repository"
	"taskscribe/internal/model"
)

// Create persists a new draft for the caller. An empty title is derived from
// the first markdown heading.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input draft.CreateDraftInput) (draft.CreateDraftOutput, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return draft.CreateDraftOutput{}, draft.ErrEmptyMarkdown
	}
	if input.Platform != "" && !model.SupportedPlatforms[input.Platform] {
		return draft.CreateDraftOutput{}, draft.ErrInvalidPlatform
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = deriveTitle(input.Markdown)
	}

	d, err := uc.repo.CreateDraft(ctx, repo.CreateDraftOptions{
		UserID:   sc.UserID,
		Title:    title,
		Markdown: input.Markdown,
		Platform: input.Platform,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateDraft: %v", err)
		return draft.CreateDraftOutput{}, err
	}

	return draft.CreateDraftOutput{Draft: d}, nil
}
