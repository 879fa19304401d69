package http

import (
	"errors"
	"net/http"

	"taskscribe/internal/submission"
	pkgErrors "taskscribe/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, submission.ErrNoTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "no tasks to submit")
	case errors.Is(err, submission.ErrInvalidPlatform):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported platform")
	case errors.Is(err, submission.ErrMissingTarget):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, submission.ErrNotConnected):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "platform is not connected")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
