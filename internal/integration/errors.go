package integration

import "errors"

var (
	ErrInvalidPlatform = errors.New("unsupported platform")
	ErrNotConnected    = errors.New("platform is not connected")
	ErrInvalidState    = errors.New("oauth state is invalid or expired")
	ErrExchangeFailed  = errors.New("oauth code exchange failed")
)
