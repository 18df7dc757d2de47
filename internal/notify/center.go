package notify

import "github.com/gen2brain/beeep"

// NotifyFunc forwards a title and body to a native notification API.
type NotifyFunc func(title, body string) error

// notificationCenter delivers through the OS notification service. The OS
// substitutes the application's own icon; severity and custom icons are not
// expressible here.
func notificationCenter(title, body string) error {
	return beeep.Notify(title, body, "")
}

// sendNotificationCenter forwards title and body to the user notification
// center. Errors are swallowed; the caller never observes delivery failure.
func (n *Notificator) sendNotificationCenter(title, body string) {
	_ = n.center(title, body)
}
