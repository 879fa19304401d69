package usecase

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"taskscribe/internal/integration"
	repo "taskscribe/internal/integration/repository"
	"taskscribe/internal/model"
)

// ConnectURL starts the OAuth flow: a one-time state is issued and bound to
// the caller, then the provider authorization URL is returned.
func (uc *implUseCase) ConnectURL(ctx context.Context, sc model.Scope, platform model.Platform) (integration.ConnectURLOutput, error) {
	cfg, ok := uc.configs[platform]
	if !ok {
		return integration.ConnectURLOutput{}, integration.ErrInvalidPlatform
	}

	state := uuid.NewString()
	uc.states.Add(state, stateOwner{UserID: sc.UserID, Platform: platform})

	opts := []oauth2.AuthCodeOption{oauth2.AccessTypeOffline}
	if platform == model.PlatformJira {
		// Atlassian requires the audience and prompt parameters for 3LO.
		opts = append(opts,
			oauth2.SetAuthURLParam("audience", "api.atlassian.com"),
			oauth2.SetAuthURLParam("prompt", "consent"),
		)
	}

	return integration.ConnectURLOutput{URL: cfg.AuthCodeURL(state, opts...)}, nil
}

// HandleCallback finishes the OAuth flow. The state must match the one issued
// to this user by ConnectURL; the code is then exchanged and stored.
func (uc *implUseCase) HandleCallback(ctx context.Context, sc model.Scope, platform model.Platform, code, state string) error {
	cfg, ok := uc.configs[platform]
	if !ok {
		return integration.ErrInvalidPlatform
	}

	owner, ok := uc.states.Get(state)
	if !ok || owner.UserID != sc.UserID || owner.Platform != platform {
		return integration.ErrInvalidState
	}
	uc.states.Remove(state) // one-time use

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback Exchange: %v", err)
		return integration.ErrExchangeFailed
	}

	_, err = uc.repo.UpsertIntegration(ctx, repo.UpsertIntegrationOptions{
		UserID:       sc.UserID,
		Platform:     platform,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.HandleCallback UpsertIntegration: %v", err)
		return err
	}

	uc.l.Infof(ctx, "user %s connected %s", sc.UserID, platform)
	return nil
}
