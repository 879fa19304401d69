package model

import "time"

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the resolved caller identity through use cases.
// Handlers populate it from the auth middleware; use cases never resolve
// identity themselves.
type Scope struct {
	UserID string
	Email  string
}

// Platform is an external issue tracker that can receive created issues.
type Platform string

const (
	PlatformLinear Platform = "linear"
	PlatformJira   Platform = "jira"
)

// SupportedPlatforms is the closed set of trackers accepted by the
// submission pipeline. Anything else fails validation before any network
// call is made.
var SupportedPlatforms = map[Platform]bool{
	PlatformLinear: true,
	PlatformJira:   true,
}

// Draft is a persisted unit of note text plus its last-chosen destination
// platform. Drafts are owned by exactly one user and are never hard-deleted.
type Draft struct {
	ID        string
	UserID    string
	Title     string
	Markdown  string
	Platform  Platform
	CreatedAt time.Time
	UpdatedAt time.Time
}
