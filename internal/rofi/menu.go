// Package rofi shows a dmenu-style chooser through rofi.
package rofi

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
	"strings"

	"hypr-raise/pkg/logger"
)

// ErrCancelled is returned when the menu is dismissed without a selection.
var ErrCancelled = errors.New("selection cancelled")

var baseArgs = []string{
	"-dmenu",
	"-i",
	"-no-custom",
	"-kb-accept-entry", "Return",
}

// Config holds the arguments passed to rofi.
type Config struct {
	Prompt    string
	ThemePath string
}

func (c Config) args() []string {
	args := slices.Clone(baseArgs)
	if c.Prompt != "" {
		args = append(args, "-p", c.Prompt)
	}
	if c.ThemePath != "" {
		args = append(args, "-theme", c.ThemePath)
	}
	return args
}

// Menu runs rofi and returns the chosen entry.
type Menu struct {
	config Config
	log    *logger.Logger

	binary string
	output func(*exec.Cmd) ([]byte, error)
}

// NewMenu creates a menu that runs the rofi binary found on PATH.
func NewMenu(config Config, log *logger.Logger) *Menu {
	return &Menu{
		config: config,
		log:    log,
		binary: "rofi",
		output: (*exec.Cmd).Output,
	}
}

// Select shows entries and returns the one the user picked.
func (m *Menu) Select(ctx context.Context, entries []string) (string, error) {
	m.log.Debug("Starting rofi menu", "entry_count", len(entries))
	if len(entries) == 0 {
		return "", fmt.Errorf("no entries to display")
	}

	cmd := exec.CommandContext(ctx, m.binary, m.config.args()...)
	cmd.Stdin = strings.NewReader(strings.Join(entries, "\n"))
	m.log.Debug("Executing rofi command", "command", cmd.String())

	output, err := m.output(cmd)
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			m.log.Debug("Rofi exited with code", "exit_code", exitErr.ExitCode())
			if exitErr.ExitCode() == 1 {
				return "", ErrCancelled
			}
		}
		m.log.Error("Failed to run rofi", err)
		return "", fmt.Errorf("failed to run rofi: %w", err)
	}

	selected := strings.TrimSpace(string(output))
	if selected == "" {
		m.log.Debug("No selection made in rofi")
		return "", ErrCancelled
	}
	if !slices.Contains(entries, selected) {
		return "", fmt.Errorf("rofi returned unknown entry %q", selected)
	}

	m.log.Debug("Rofi selection", "selected", selected)
	return selected, nil
}
