package draft

import "errors"

// Domain-specific errors for the draft package.
// ErrDraftNotFound deliberately covers both "does not exist" and "owned by
// someone else" so callers cannot probe for foreign drafts.
var (
	ErrDraftNotFound   = errors.New("draft not found")
	ErrEmptyMarkdown   = errors.New("markdown content is empty")
	ErrInvalidPlatform = errors.New("unsupported platform")
)
