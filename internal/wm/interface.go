package wm

import (
	"context"

	"hypr-raise/internal/match"
)

type WindowManager interface {
	// ListWindows returns every client window in compositor order
	ListWindows(ctx context.Context) ([]match.Window, error)
	// FocusWindow brings the window with the given id to front
	FocusWindow(ctx context.Context, id string) error
	// Name returns the WM name for logging/display
	Name() string
	// Close releases the connection to the display server
	Close() error
}

// Execer is implemented by compositors that can launch a command themselves.
type Execer interface {
	Exec(ctx context.Context, command string) error
}
