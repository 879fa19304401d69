package http

import (
	"net/http"

	"taskscribe/internal/draft"
	pkgErrors "taskscribe/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// A foreign draft maps to 404, never 403, so existence is not leaked.
func (h *handler) mapError(err error) error {
	switch err {
	case draft.ErrDraftNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "draft not found")
	case draft.ErrEmptyMarkdown:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "markdown content is empty")
	case draft.ErrInvalidPlatform:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported platform")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
