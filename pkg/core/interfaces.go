package core

import (
	"context"

	"hypr-raise/internal/match"
)

// Logger defines the interface for logging operations
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, err error, keysAndValues ...interface{})
}

// WindowLister returns the compositor's windows in its own enumeration order.
type WindowLister interface {
	ListWindows(ctx context.Context) ([]match.Window, error)
}

// Focuser focuses a window by its compositor identifier.
type Focuser interface {
	FocusWindow(ctx context.Context, id string) error
}

// Launcher starts a command without waiting for it.
type Launcher interface {
	Launch(ctx context.Context, command string) error
}
