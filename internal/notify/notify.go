package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Notifier displays a desktop notification. Implementations are
// best-effort: callers treat a failure as non-fatal.
type Notifier interface {
	Notify(title, body string) error
}

// Disabled returns a Notifier that does nothing.
func Disabled() Notifier { return nopNotifier{} }

type nopNotifier struct{}

func (nopNotifier) Notify(title, body string) error { return nil }

// DBusNotifier sends notifications to the desktop via
// org.freedesktop.Notifications on the session bus.
type DBusNotifier struct {
	appName string
}

// NewDBusNotifier creates a notifier that reports under the given
// application name.
func NewDBusNotifier(appName string) *DBusNotifier {
	return &DBusNotifier{appName: appName}
}

func (n *DBusNotifier) Notify(title, body string) error {
	// SessionBus returns a shared connection; it must not be closed here.
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		n.appName,                 // app_name
		uint32(0),                 // replaces_id
		"",                        // app_icon
		title,                     // summary
		body,                      // body
		[]string{},                // actions
		map[string]dbus.Variant{}, // hints
		int32(5000),               // expire_timeout (ms)
	)
	if call.Err != nil {
		return fmt.Errorf("send notification: %w", call.Err)
	}
	return nil
}
