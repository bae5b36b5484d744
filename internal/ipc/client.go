// Package ipc talks to Hyprland's request socket.
package ipc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"

	"hypr-raise/pkg/logger"
)

// ErrNoSocket is returned by SocketPath when no request socket exists for the
// instance signature.
var ErrNoSocket = errors.New("hyprland request socket not found")

// SocketPath locates the request socket for a Hyprland instance. Newer
// releases keep it under $XDG_RUNTIME_DIR/hypr, older ones under /tmp/hypr.
func SocketPath(signature string) (string, error) {
	if signature == "" {
		return "", fmt.Errorf("%w: HYPRLAND_INSTANCE_SIGNATURE is not set", ErrNoSocket)
	}

	var candidates []string
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "hypr", signature, ".socket.sock"))
	}
	candidates = append(candidates, filepath.Join("/tmp", "hypr", signature, ".socket.sock"))

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: checked %s", ErrNoSocket, strings.Join(candidates, ", "))
}

// Client sends one request per connection, the way hyprctl does.
type Client struct {
	socketPath string
	log        *logger.Logger
	dialer     net.Dialer
}

// NewClient creates a client for the socket at socketPath.
func NewClient(socketPath string, log *logger.Logger) *Client {
	return &Client{socketPath: socketPath, log: log}
}

// Request writes command and returns the full response.
func (c *Client) Request(ctx context.Context, command string) ([]byte, error) {
	c.log.Debug("Connecting to hyprland socket", "path", c.socketPath)

	conn, err := c.dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		c.log.Error("Failed to connect to hyprland socket", err, "path", c.socketPath)
		return nil, fmt.Errorf("failed to connect to %s: %w", c.socketPath, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, fmt.Errorf("failed to set socket deadline: %w", err)
		}
	}

	if _, err := io.WriteString(conn, command); err != nil {
		c.log.Error("Failed to send request", err, "command", command)
		return nil, fmt.Errorf("failed to send %q: %w", command, err)
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		c.log.Error("Failed to read response", err, "command", command)
		return nil, fmt.Errorf("failed to read response to %q: %w", command, err)
	}

	c.log.Debug("Response received", "command", command, "size_bytes", len(resp))
	return resp, nil
}

// DispatchRequest builds the request string for a dispatcher call.
func DispatchRequest(dispatcher string, arg string) string {
	if arg == "" {
		return "dispatch " + dispatcher
	}
	return "dispatch " + dispatcher + " " + arg
}

// DecodeJSON decodes a JSON response, keeping the command in the error.
func DecodeJSON(command string, resp []byte, v interface{}) error {
	if err := json.Unmarshal(resp, v); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", command, err)
	}
	return nil
}

// CheckOK returns an error carrying the reply text unless it is "ok".
func CheckOK(resp []byte) error {
	reply := strings.TrimSpace(string(resp))
	if reply != "ok" {
		if reply == "" {
			reply = "empty reply"
		}
		return errors.New(reply)
	}
	return nil
}
