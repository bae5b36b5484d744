package notify

import (
	"fmt"
	"os/exec"

	"hypr-raise/pkg/logger"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Info {
		return "INFO"
	}
	return "ERROR"
}

// NotifyService sends desktop notifications. It matters when the tool runs
// from a compositor keybinding and stderr goes nowhere.
type NotifyService struct {
	log           *logger.Logger
	notifyCommand string

	lookPath func(string) (string, error)
	run      func(*exec.Cmd) error
}

// NewNotifyService creates a new notification service
func NewNotifyService(notifyCommand string, log *logger.Logger) *NotifyService {
	return &NotifyService{
		log:           log,
		notifyCommand: notifyCommand,
		lookPath:      exec.LookPath,
		run:           (*exec.Cmd).Run,
	}
}

// Show displays a notification of the specified type
func (n *NotifyService) Show(title string, message string, nType NotificationType) error {
	// First try configured notification command if available
	if n.notifyCommand != "" {
		if err := n.executeNotifyCommand(title, message, nType); err == nil {
			return nil
		}
		n.log.Warn("Custom notification command failed", "command", n.notifyCommand)
	}

	return n.trySystemNotification(title, message, nType)
}

// executeNotifyCommand runs the user's command with type, title and message
// as positional arguments, so the message is never re-parsed by the shell.
func (n *NotifyService) executeNotifyCommand(title string, message string, nType NotificationType) error {
	n.log.Debug("Executing notify command", "notify_command", n.notifyCommand, "type", nType.String())

	cmd := exec.Command("sh", "-c", n.notifyCommand+` "$@"`, "sh", nType.String(), title, message)
	if err := n.run(cmd); err != nil {
		return fmt.Errorf("notify command failed: %w", err)
	}
	return nil
}
