// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/newsdesk/internal/logger"
)

// AppName is the title used for every newsdesk notification.
const AppName = "newsdesk"

var notify = beeep.Notify

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	notify = fn
}

// ResetNotifier restores beeep as the notification backend.
func ResetNotifier() {
	notify = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Empty icon: beeep picks the platform default
	err := notify(title, message, "")
	if err != nil {
		logger.Warn("Notification: Failed to send notification: %v", err)
	}
	return err
}

// NewsFailed tells the user that the news feed could not be loaded.
func NewsFailed(detail string) error {
	msg := "Failed to load news"
	if detail != "" {
		msg += ": " + detail
	}
	return Send(AppName, msg)
}
