// Package launch starts the fallback command when no window matches.
package launch

import (
	"context"
	"fmt"
	"os/exec"

	"hypr-raise/internal/wm"
	"hypr-raise/pkg/core"
	"hypr-raise/pkg/logger"
)

const (
	ModeShell      = "shell"
	ModeCompositor = "compositor"
)

// Shell runs the command through a shell in its own session and does not
// wait for it.
type Shell struct {
	Path string
	log  *logger.Logger
}

func NewShell(log *logger.Logger) *Shell {
	return &Shell{Path: "/bin/sh", log: log}
}

func (s *Shell) Launch(ctx context.Context, command string) error {
	cmd := exec.Command(s.Path, "-c", command)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.SysProcAttr = detached()

	if err := cmd.Start(); err != nil {
		s.log.Error("Failed to start command", err, "command", command)
		return fmt.Errorf("failed to start %s: %w", s.Path, err)
	}
	s.log.Debug("Launched command", "command", command, "pid", cmd.Process.Pid)

	// the child outlives us; nothing will Wait on it
	return cmd.Process.Release()
}

// Compositor hands the command to the compositor's own exec facility.
type Compositor struct {
	exec wm.Execer
}

func NewCompositor(e wm.Execer) *Compositor {
	return &Compositor{exec: e}
}

func (c *Compositor) Launch(ctx context.Context, command string) error {
	return c.exec.Exec(ctx, command)
}

// New returns the launcher for mode. The compositor mode needs a backend that
// implements wm.Execer.
func New(mode string, m *wm.Manager, log *logger.Logger) (core.Launcher, error) {
	switch mode {
	case "", ModeShell:
		return NewShell(log), nil
	case ModeCompositor:
		e, ok := m.Execer()
		if !ok {
			return nil, fmt.Errorf("backend %s cannot launch commands", m.GetWMName())
		}
		return NewCompositor(e), nil
	}
	return nil, fmt.Errorf("unknown launcher %q", mode)
}
