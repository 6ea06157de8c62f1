package notify

import (
	"sync"

	"eyetimer/internal/logger"

	"fyne.io/fyne/v2"
)

// Desktop sends notifications through the fyne app. The operating system
// decides whether they are shown; there is no prompt, so the permission
// request only records that the user started the timer.
type Desktop struct {
	app       fyne.App
	mu        sync.Mutex
	permitted bool
}

// NewDesktop creates a notifier bound to the app.
func NewDesktop(app fyne.App) *Desktop {
	return &Desktop{app: app}
}

// Permitted reports whether notifications were requested.
func (desktop *Desktop) Permitted() bool {
	desktop.mu.Lock()
	defer desktop.mu.Unlock()
	return desktop.permitted
}

// RequestPermission marks notifications as allowed.
func (desktop *Desktop) RequestPermission() error {
	desktop.mu.Lock()
	desktop.permitted = true
	desktop.mu.Unlock()
	logger.Debug("desktop notifications enabled")
	return nil
}

// Notify shows a desktop notification.
func (desktop *Desktop) Notify(title, body string) error {
	notification := fyne.NewNotification(title, body)
	fyne.Do(func() {
		desktop.app.SendNotification(notification)
	})
	return nil
}

// Log writes notifications to the log. Used by headless modes.
type Log struct {
	mu   sync.Mutex
	last string
}

// Permitted always reports true.
func (notifier *Log) Permitted() bool {
	return true
}

// RequestPermission is a no-op.
func (notifier *Log) RequestPermission() error {
	return nil
}

// Notify logs the notification and keeps it as the last message.
func (notifier *Log) Notify(title, body string) error {
	logger.Info("notification", "title", title, "body", body)
	notifier.mu.Lock()
	notifier.last = title + " " + body
	notifier.mu.Unlock()
	return nil
}

// Last returns the most recent notification text.
func (notifier *Log) Last() string {
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	return notifier.last
}
