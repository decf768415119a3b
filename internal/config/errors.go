package config

import "fmt"

// DatabaseNotFoundError reports a missing search database artifact.
//
// Search functionality is unavailable without the artifact, but the error
// carries the command that rebuilds it so callers can surface an actionable
// message instead of a stack trace.
type DatabaseNotFoundError struct {
	Path string
}

func (e *DatabaseNotFoundError) Error() string {
	return fmt.Sprintf("Search database not found: %s\nPlease run '%s' first", e.Path, RebuildCommand)
}
