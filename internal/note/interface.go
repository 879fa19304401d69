package note

import (
	"context"

	"taskscribe/internal/model"
)

// UseCase defines the business logic interface for the note domain.
type UseCase interface {
	// Segment splits raw markdown into discrete task candidates, one per
	// "## " heading section.
	Segment(ctx context.Context, sc model.Scope, input SegmentInput) (SegmentOutput, error)

	// Extract sends note text to the LLM. Task mode returns structured
	// tasks; style modes return rewritten prose.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Autocomplete returns a short continuation (at most a few words) of the
	// text at the cursor.
	Autocomplete(ctx context.Context, sc model.Scope, text string) (string, error)

	// GenerateTitle returns a 3-4 word title for the given content.
	GenerateTitle(ctx context.Context, sc model.Scope, text string) (string, error)
}
