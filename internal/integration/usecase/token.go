package usecase

import (
	"context"
	"time"

	"taskscribe/internal/integration"
	repo "taskscribe/internal/integration/repository"
	"taskscribe/internal/model"
)

// Token returns the stored connection for one platform.
func (uc *implUseCase) Token(ctx context.Context, sc model.Scope, platform model.Platform) (model.Integration, error) {
	if !model.SupportedPlatforms[platform] {
		return model.Integration{}, integration.ErrInvalidPlatform
	}

	in, err := uc.repo.GetOneIntegration(ctx, repo.GetOneIntegrationOptions{
		UserID:   sc.UserID,
		Platform: platform,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Token GetOneIntegration: %v", err)
		return model.Integration{}, err
	}
	if in.ID == "" {
		return model.Integration{}, integration.ErrNotConnected
	}
	return in, nil
}

// SaveToken persists a rotated token pair for an existing connection.
func (uc *implUseCase) SaveToken(ctx context.Context, sc model.Scope, platform model.Platform, accessToken, refreshToken string, expiresAt time.Time) error {
	if !model.SupportedPlatforms[platform] {
		return integration.ErrInvalidPlatform
	}

	_, err := uc.repo.UpsertIntegration(ctx, repo.UpsertIntegrationOptions{
		UserID:       sc.UserID,
		Platform:     platform,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SaveToken UpsertIntegration: %v", err)
		return err
	}
	return nil
}
