package integration

import (
	"context"
	"time"

	"taskscribe/internal/model"
)

// UseCase defines the business logic interface for tracker connections.
type UseCase interface {
	// ConnectURL starts the OAuth flow for one platform and returns the
	// provider authorization URL.
	ConnectURL(ctx context.Context, sc model.Scope, platform model.Platform) (ConnectURLOutput, error)

	// HandleCallback finishes the OAuth flow: exchanges the code and stores
	// the token pair.
	HandleCallback(ctx context.Context, sc model.Scope, platform model.Platform, code, state string) error

	// Status reports which platforms the caller has connected.
	Status(ctx context.Context, sc model.Scope) (StatusOutput, error)

	// Token returns the stored connection for one platform.
	// Returns ErrNotConnected when the user never connected it.
	Token(ctx context.Context, sc model.Scope, platform model.Platform) (model.Integration, error)

	// SaveToken persists a rotated token pair, e.g. after a refresh.
	SaveToken(ctx context.Context, sc model.Scope, platform model.Platform, accessToken, refreshToken string, expiresAt time.Time) error
}
