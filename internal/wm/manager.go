package wm

import (
	"context"
	"fmt"

	"hypr-raise/internal/match"
	"hypr-raise/pkg/logger"
)

const (
	BackendAuto     = "auto"
	BackendHyprland = "hyprland"
	BackendX11      = "x11"
)

// Manager handles window management operations based on the session type
type Manager struct {
	wm  WindowManager
	log *logger.Logger
}

// DetectBackend picks a backend from the session environment.
func DetectBackend(getenv func(string) string) (string, error) {
	if getenv("HYPRLAND_INSTANCE_SIGNATURE") != "" {
		return BackendHyprland, nil
	}

	switch sessionType := getenv("XDG_SESSION_TYPE"); sessionType {
	case "wayland":
		return "", fmt.Errorf("unsupported Wayland compositor: only Hyprland is supported")
	case "x11":
		return BackendX11, nil
	default:
		if getenv("DISPLAY") != "" {
			return BackendX11, nil
		}
		return "", fmt.Errorf("unsupported session type: %q", sessionType)
	}
}

// NewManager connects to the requested backend; "auto" or "" detects it
// from the environment.
func NewManager(backend string, getenv func(string) string, log *logger.Logger) (*Manager, error) {
	if backend == "" || backend == BackendAuto {
		detected, err := DetectBackend(getenv)
		if err != nil {
			return nil, err
		}
		log.Debug("Detected window manager backend", "backend", detected)
		backend = detected
	}

	var wm WindowManager
	var err error

	switch backend {
	case BackendHyprland:
		wm, err = NewHyprland(getenv("HYPRLAND_INSTANCE_SIGNATURE"), log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Hyprland support: %w", err)
		}
	case BackendX11:
		wm, err = NewX11(log)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize X11 support: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}

	log.Debug("Window manager initialized", "name", wm.Name())
	return &Manager{wm: wm, log: log}, nil
}

// ListWindows wraps the underlying window manager's ListWindows method
func (m *Manager) ListWindows(ctx context.Context) ([]match.Window, error) {
	return m.wm.ListWindows(ctx)
}

// FocusWindow wraps the underlying window manager's FocusWindow method
func (m *Manager) FocusWindow(ctx context.Context, id string) error {
	return m.wm.FocusWindow(ctx, id)
}

// Execer returns the backend as an Execer when it can launch commands itself.
func (m *Manager) Execer() (Execer, bool) {
	e, ok := m.wm.(Execer)
	return e, ok
}

// GetWMName returns the name of the current window manager
func (m *Manager) GetWMName() string {
	return m.wm.Name()
}

func (m *Manager) Close() error {
	return m.wm.Close()
}
