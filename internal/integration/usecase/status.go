package usecase

import (
	"context"

	"taskscribe/internal/integration"
	repo "taskscribe/internal/integration/repository"
	"taskscribe/internal/model"
)

// Status reports every supported platform, connected or not.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (integration.StatusOutput, error) {
	connections, err := uc.repo.ListIntegrations(ctx, repo.ListIntegrationsOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Status ListIntegrations: %v", err)
		return integration.StatusOutput{}, err
	}

	connected := make(map[model.Platform]model.Integration, len(connections))
	for _, in := range connections {
		connected[in.Platform] = in
	}

	out := integration.StatusOutput{}
	for _, platform := range []model.Platform{model.PlatformLinear, model.PlatformJira} {
		st := integration.PlatformStatus{Platform: platform}
		if in, ok := connected[platform]; ok {
			st.Connected = true
			st.ExpiresAt = in.ExpiresAt
		}
		out.Platforms = append(out.Platforms, st)
	}
	return out, nil
}
