package wm

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"hypr-raise/pkg/logger"
)

// hyprctl sends requests through the hyprctl binary when the request socket
// cannot be reached directly.
type hyprctl struct {
	path string
	log  *logger.Logger
}

func newHyprctl(log *logger.Logger) (*hyprctl, error) {
	path, err := exec.LookPath("hyprctl")
	if err != nil {
		log.Error("hyprctl not found in PATH", err)
		return nil, fmt.Errorf("hyprctl not found in PATH: %w", err)
	}
	log.Debug("Found hyprctl", "path", path)
	return &hyprctl{path: path, log: log}, nil
}

// hyprctlArgs translates a socket request such as "j/clients" or
// "dispatch focuswindow address:0x1" into hyprctl arguments.
func hyprctlArgs(request string) []string {
	var args []string
	if rest, ok := strings.CutPrefix(request, "j/"); ok {
		args = append(args, "-j")
		request = rest
	}
	command, arg, _ := strings.Cut(request, " ")
	args = append(args, command)
	if arg != "" {
		args = append(args, arg)
	}
	return args
}

func (h *hyprctl) Request(ctx context.Context, request string) ([]byte, error) {
	args := hyprctlArgs(request)
	cmd := exec.CommandContext(ctx, h.path, args...)
	output, err := cmd.Output()
	if err != nil {
		h.log.Error("Failed to execute hyprctl", err, "args", args, "output", string(output))
		return nil, fmt.Errorf("hyprctl error: %w", err)
	}
	return output, nil
}
