package submission

import "errors"

var (
	ErrNoTasks         = errors.New("no tasks to submit")
	ErrInvalidPlatform = errors.New("unsupported platform")
	ErrMissingTarget   = errors.New("incomplete submission target")
	ErrNotConnected    = errors.New("platform is not connected")
)
