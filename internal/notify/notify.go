// Package notify shows now-playing desktop notifications.
package notify

// Notification is one desktop notification.
type Notification struct {
	Summary string
	Body    string
	// Icon is an icon name from the freedesktop icon theme.
	Icon    string
	Timeout int32 // ms, -1 = server default
	// ReplacesID replaces the notification with that id when non-zero.
	ReplacesID uint32
	// Transient notifications are not kept in the notification history.
	Transient bool
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify returns the id of the shown notification, 0 when notifications
	// are unavailable.
	Notify(n Notification) (uint32, error)
}

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
