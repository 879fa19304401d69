package usecase

import (
	"context"
	"errors"
	"fmt"

	"taskscribe/internal/integration"
	"taskscribe/internal/model"
	"taskscribe/internal/submission"
)

// Submit validates the batch, resolves the caller's tracker connection and
// pushes tasks one by one. Failed items are logged and skipped so a partial
// batch still lands.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input submission.SubmitInput) (submission.SubmitOutput, error) {
	if err := validateInput(input); err != nil {
		return submission.SubmitOutput{}, err
	}

	conn, err := uc.integrations.Token(ctx, sc, input.Platform)
	if err != nil {
		if errors.Is(err, integration.ErrNotConnected) {
			return submission.SubmitOutput{}, submission.ErrNotConnected
		}
		uc.l.Errorf(ctx, "uc.Submit Token: %v", err)
		return submission.SubmitOutput{}, err
	}

	var out submission.SubmitOutput
	switch input.Platform {
	case model.PlatformLinear:
		out = uc.submitLinear(ctx, conn, input)
	case model.PlatformJira:
		out = uc.submitJira(ctx, sc, conn, input)
	}

	// Per-item failures never fail the batch: a reachable tracker that
	// rejects every item still yields a zero-count success.
	if out.CreatedCount == 0 {
		uc.l.Warnf(ctx, "uc.Submit: no issues created out of %d tasks", len(input.Tasks))
		return out, nil
	}

	if input.DraftID != "" && uc.drafts != nil {
		// Bookkeeping only: a failure here never undoes created issues.
		if err := uc.drafts.MarkSubmitted(ctx, sc, input.DraftID, input.Platform); err != nil {
			uc.l.Warnf(ctx, "uc.Submit MarkSubmitted %s: %v", input.DraftID, err)
		}
	}

	return out, nil
}

// validateInput fails the whole batch before any network call is made.
func validateInput(input submission.SubmitInput) error {
	if len(input.Tasks) == 0 {
		return submission.ErrNoTasks
	}
	if !model.SupportedPlatforms[input.Platform] {
		return submission.ErrInvalidPlatform
	}

	switch input.Platform {
	case model.PlatformLinear:
		if input.Target.TeamID == "" {
			return fmt.Errorf("%w: team_id is required", submission.ErrMissingTarget)
		}
	case model.PlatformJira:
		if input.Target.CloudID == "" {
			return fmt.Errorf("%w: cloud_id is required", submission.ErrMissingTarget)
		}
		if input.Target.ProjectID == "" {
			return fmt.Errorf("%w: project_id is required", submission.ErrMissingTarget)
		}
		if input.Target.IssueTypeID == "" {
			return fmt.Errorf("%w: issue_type_id is required", submission.ErrMissingTarget)
		}
	}
	return nil
}
