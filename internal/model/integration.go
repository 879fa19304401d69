package model

import "time"

// Integration is one user's OAuth connection to an issue tracker.
// At most one row exists per (user, platform); reconnecting replaces the
// token pair in place.
type Integration struct {
	ID           string
	UserID       string
	Platform     Platform
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
