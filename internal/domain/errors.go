package domain

import (
	"fmt"
	"strings"
)

// QueryFailedError is returned when the build-graph query tool exits non-zero
type QueryFailedError struct {
	ExitCode int
	Command  []string
}

func (e *QueryFailedError) Error() string {
	return fmt.Sprintf("GN call failed with error code %d for command: %s", e.ExitCode, strings.Join(e.Command, " "))
}

// UsageError reports invalid positional arguments
type UsageError struct {
	Reason string
}

func (e *UsageError) Error() string {
	return e.Reason
}
