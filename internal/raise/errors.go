package raise

import (
	"fmt"

	"hypr-raise/internal/match"
)

type (
	// ArgumentError reports invalid command-line input or matcher syntax.
	ArgumentError = match.ArgumentError
	// PatternError reports a regex that failed to compile.
	PatternError = match.PatternError
)

// QueryError reports that the window list could not be obtained.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("failed to list windows: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// FocusError reports that the target window could not be focused, usually
// because it closed after the window list was read.
type FocusError struct {
	ID  string
	Err error
}

func (e *FocusError) Error() string {
	return fmt.Sprintf("failed to focus window %s: %v", e.ID, e.Err)
}

func (e *FocusError) Unwrap() error { return e.Err }

// SpawnError reports that the launch command could not be started.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %q: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
