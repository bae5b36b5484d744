package wm

import (
	"context"
	"fmt"
	"strconv"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"

	"hypr-raise/internal/match"
	"hypr-raise/pkg/logger"
)

// X11 reads the EWMH client list of an X11 window manager. X11 has no notion
// of initial class/title or tags, so the initial fields repeat the current
// ones and the tag fields stay empty.
type X11 struct {
	xu  *xgbutil.XUtil
	log *logger.Logger
}

func NewX11(log *logger.Logger) (*X11, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		log.Error("Failed to connect to X server", err)
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}
	return &X11{xu: xu, log: log}, nil
}

func (x *X11) Name() string {
	return "X11"
}

func (x *X11) Close() error {
	x.xu.Conn().Close()
	return nil
}

func formatWindowID(id xproto.Window) string {
	return fmt.Sprintf("0x%x", uint32(id))
}

func parseWindowID(id string) (xproto.Window, error) {
	n, err := strconv.ParseUint(id, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid X11 window id %q: %w", id, err)
	}
	return xproto.Window(n), nil
}

func (x *X11) ListWindows(ctx context.Context) ([]match.Window, error) {
	ids, err := ewmh.ClientListGet(x.xu)
	if err != nil {
		x.log.Error("Failed to read _NET_CLIENT_LIST", err)
		return nil, fmt.Errorf("failed to read client list: %w", err)
	}

	// A missing _NET_ACTIVE_WINDOW just means nothing is focused.
	active, err := ewmh.ActiveWindowGet(x.xu)
	if err != nil {
		x.log.Debug("No active window reported", "error", err.Error())
		active = 0
	}

	windows := make([]match.Window, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var class string
		if wc, err := icccm.WmClassGet(x.xu, id); err == nil {
			class = wc.Class
		}

		title, err := ewmh.WmNameGet(x.xu, id)
		if err != nil || title == "" {
			title, _ = icccm.WmNameGet(x.xu, id)
		}

		windows = append(windows, match.Window{
			ID:           formatWindowID(id),
			Class:        class,
			InitialClass: class,
			Title:        title,
			InitialTitle: title,
			Focused:      active != 0 && id == active,
		})
	}

	x.log.Debug("Listed X11 clients", "count", len(windows), "active", formatWindowID(active))
	return windows, nil
}

// FocusWindow sends a _NET_ACTIVE_WINDOW request after checking that the
// window is still managed.
func (x *X11) FocusWindow(ctx context.Context, id string) error {
	win, err := parseWindowID(id)
	if err != nil {
		return err
	}

	ids, err := ewmh.ClientListGet(x.xu)
	if err != nil {
		return fmt.Errorf("failed to read client list: %w", err)
	}
	found := false
	for _, c := range ids {
		if c == win {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("window %s is no longer managed", id)
	}

	x.log.Debug("Focusing window", "id", id)
	if err := ewmh.ActiveWindowReq(x.xu, win); err != nil {
		x.log.Error("Failed to focus window", err, "id", id)
		return fmt.Errorf("failed to focus window: %w", err)
	}
	x.xu.Sync()
	return nil
}
