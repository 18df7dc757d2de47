package notify

import (
	"errors"
	"image"
	"time"

	"github.com/godbus/dbus/v5"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyMethod    = "org.freedesktop.Notifications.Notify"
	dbusHintIconData    = "icon_data"
	dbusMethodHasOwner  = "org.freedesktop.DBus.NameHasOwner"
	dbusMethodListNames = "org.freedesktop.DBus.ListActivatableNames"
)

// BusObject is the subset of dbus.BusObject used to reach the notification
// service.
type BusObject interface {
	Go(method string, flags dbus.Flags, ch chan *dbus.Call, args ...interface{}) *dbus.Call
}

// busCloser releases the bus connection backing a BusObject.
type busCloser interface {
	Close() error
}

// connectNotificationService dials a private session bus connection and
// verifies that the freedesktop notification service is either running or
// bus-activatable. The returned closer owns the connection.
func connectNotificationService() (BusObject, busCloser, error) {
	conn, err := dbus.SessionBusPrivate()
	if err != nil {
		return nil, nil, err
	}
	if err := conn.Auth(nil); err != nil {
		conn.Close()
		return nil, nil, err
	}
	if err := conn.Hello(); err != nil {
		conn.Close()
		return nil, nil, err
	}

	if !notificationServiceAvailable(conn) {
		conn.Close()
		return nil, nil, errors.New("notification service not available on session bus")
	}

	return conn.Object(dbusNotifyDest, dbusNotifyPath), conn, nil
}

func notificationServiceAvailable(conn *dbus.Conn) bool {
	var owned bool
	if err := conn.BusObject().Call(dbusMethodHasOwner, 0, dbusNotifyDest).Store(&owned); err != nil {
		return false
	}
	if owned {
		return true
	}

	// The service may be activatable without currently running.
	var names []string
	if err := conn.BusObject().Call(dbusMethodListNames, 0).Store(&names); err != nil {
		return false
	}
	for _, name := range names {
		if name == dbusNotifyDest {
			return true
		}
	}
	return false
}

// CheckDBusService dials the session bus and reports whether the
// freedesktop notification service can be reached. Intended for
// diagnostics.
func CheckDBusService() error {
	_, closer, err := connectNotificationService()
	if err != nil {
		return err
	}
	return closer.Close()
}

// sendDBus builds the positional freedesktop Notify argument list and fires
// it without waiting for a reply. The notification id is always 0 (no
// replace tracking) and actions are always empty.
func (n *Notificator) sendDBus(severity Severity, title, body string, icon image.Image, timeout time.Duration) {
	if n.bus == nil {
		return
	}

	img := icon
	if img == nil {
		img = n.iconLookup(severity)
	}

	hints := map[string]dbus.Variant{}
	if img != nil {
		payload := encodeImage(scaleSquare(img, freedesktopIconSize))
		hints[dbusHintIconData] = dbus.MakeVariant(payload)
	}

	n.bus.Go(dbusNotifyMethod, dbus.FlagNoReplyExpected, nil,
		n.appName,
		uint32(0),
		"",
		title,
		body,
		[]string{},
		hints,
		int32(timeout.Milliseconds()),
	)
}
