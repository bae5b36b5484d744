package wm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hypr-raise/internal/ipc"
	"hypr-raise/internal/match"
	"hypr-raise/pkg/logger"
)

type requester interface {
	Request(ctx context.Context, request string) ([]byte, error)
}

type Hyprland struct {
	log  *logger.Logger
	conn requester
}

// hyprClient mirrors the fields of `hyprctl clients -j` we match on.
type hyprClient struct {
	Address      string   `json:"address"`
	Class        string   `json:"class"`
	Title        string   `json:"title"`
	InitialClass string   `json:"initialClass"`
	InitialTitle string   `json:"initialTitle"`
	Tags         []string `json:"tags"`
	XdgTag       string   `json:"xdgTag"`
}

func NewHyprland(signature string, log *logger.Logger) (*Hyprland, error) {
	path, err := ipc.SocketPath(signature)
	if err == nil {
		log.Debug("Using hyprland request socket", "path", path)
		return &Hyprland{log: log, conn: ipc.NewClient(path, log)}, nil
	}
	if !errors.Is(err, ipc.ErrNoSocket) {
		return nil, err
	}

	log.Warn("Hyprland socket unavailable, falling back to hyprctl", "reason", err.Error())
	h, herr := newHyprctl(log)
	if herr != nil {
		return nil, fmt.Errorf("no way to reach hyprland: %w", errors.Join(err, herr))
	}
	return &Hyprland{log: log, conn: h}, nil
}

func (h *Hyprland) Name() string {
	return "Hyprland"
}

func (h *Hyprland) Close() error {
	return nil
}

func (h *Hyprland) request(ctx context.Context, command string, v interface{}) error {
	resp, err := h.conn.Request(ctx, "j/"+command)
	if err != nil {
		return err
	}
	return ipc.DecodeJSON(command, resp, v)
}

// ListWindows reads the client list and the active window. The active window
// is reported separately because focusHistoryID stays 0 for the last focused
// client even when an empty workspace has focus.
func (h *Hyprland) ListWindows(ctx context.Context) ([]match.Window, error) {
	var clients []hyprClient
	if err := h.request(ctx, "clients", &clients); err != nil {
		h.log.Error("Failed to list clients", err)
		return nil, err
	}

	var active hyprClient
	if err := h.request(ctx, "activewindow", &active); err != nil {
		h.log.Error("Failed to read active window", err)
		return nil, err
	}

	windows := make([]match.Window, 0, len(clients))
	for _, c := range clients {
		windows = append(windows, match.Window{
			ID:           c.Address,
			Class:        c.Class,
			InitialClass: c.InitialClass,
			Title:        c.Title,
			InitialTitle: c.InitialTitle,
			Tag:          strings.Join(c.Tags, ","),
			XdgTag:       c.XdgTag,
			Focused:      active.Address != "" && c.Address == active.Address,
		})
	}

	h.log.Debug("Listed hyprland clients", "count", len(windows), "active", active.Address)
	return windows, nil
}

func (h *Hyprland) FocusWindow(ctx context.Context, id string) error {
	h.log.Debug("Focusing window", "address", id)
	return h.dispatch(ctx, "focuswindow", "address:"+id)
}

// Exec asks Hyprland to launch command, so it inherits the compositor's
// environment and exec rules.
func (h *Hyprland) Exec(ctx context.Context, command string) error {
	h.log.Debug("Launching through hyprland", "command", command)
	return h.dispatch(ctx, "exec", command)
}

func (h *Hyprland) dispatch(ctx context.Context, dispatcher, arg string) error {
	resp, err := h.conn.Request(ctx, ipc.DispatchRequest(dispatcher, arg))
	if err != nil {
		return err
	}
	if err := ipc.CheckOK(resp); err != nil {
		h.log.Error("Dispatch rejected", err, "dispatcher", dispatcher, "arg", arg)
		return fmt.Errorf("%s %s: %w", dispatcher, arg, err)
	}
	return nil
}
