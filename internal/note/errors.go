package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrInvalidMode    = errors.New("invalid extraction mode")
	ErrLLMUnavailable = errors.New("generative backend unavailable")
	ErrBadLLMOutput   = errors.New("generative backend returned unparseable output")
)
