package draft

import (
	"context"

	"taskscribe/internal/model"
)

// UseCase defines the business logic interface for the draft domain.
// Every operation is ownership-scoped: a draft is only visible to the user
// recorded on it, and a foreign draft surfaces as not-found.
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, input CreateDraftInput) (CreateDraftOutput, error)
	List(ctx context.Context, sc model.Scope, input ListDraftsInput) (ListDraftsOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailDraftOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateDraftInput) (UpdateDraftOutput, error)

	// MarkSubmitted records the destination platform after a successful
	// submission.
	MarkSubmitted(ctx context.Context, sc model.Scope, id string, platform model.Platform) error
}
