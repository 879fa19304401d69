package submission

import (
	"context"

	"taskscribe/internal/model"
)

// UseCase defines the business logic interface for the submission domain.
type UseCase interface {
	// Submit pushes a batch of tasks to the chosen tracker. Validation
	// failures abort before any network call; individual create failures
	// only reduce the created count.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)
}
