package integration

import (
	"time"

	"taskscribe/internal/model"
)

// ConnectURLOutput carries the provider authorization URL the client should
// redirect the user to.
type ConnectURLOutput struct {
	URL string
}

// PlatformStatus reports one tracker connection.
type PlatformStatus struct {
	Platform  model.Platform
	Connected bool
	ExpiresAt time.Time
}

// StatusOutput reports the caller's tracker connections.
type StatusOutput struct {
	Platforms []PlatformStatus
}
