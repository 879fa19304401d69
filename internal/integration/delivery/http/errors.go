package http

import (
	"net/http"

	"taskscribe/internal/integration"
	pkgErrors "taskscribe/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case integration.ErrInvalidPlatform:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "unsupported platform")
	case integration.ErrInvalidState:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "oauth state is invalid or expired")
	case integration.ErrExchangeFailed:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "provider rejected the authorization code")
	case integration.ErrNotConnected:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "platform is not connected")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "something went wrong")
	}
}
