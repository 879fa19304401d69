package http

import (
	"errors"
	"net/http"

	"taskscribe/internal/note"
	pkgErrors "taskscribe/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// Upstream LLM failures surface as 500 without leaking provider payloads.
// Sentinels arrive wrapped, so matching goes through errors.Is.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, note.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is empty")
	case errors.Is(err, note.ErrInvalidMode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown extraction mode")
	case errors.Is(err, note.ErrLLMUnavailable), errors.Is(err, note.ErrBadLLMOutput):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "text processing failed")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
