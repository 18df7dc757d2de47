// Package notify provides desktop toast notifications over heterogeneous
// platform backends. A Notificator probes the host once at construction,
// commits to a single backend mode and routes every request through it.
package notify

import (
	"fmt"
	"image"
	"time"

	"github.com/xabinapal/herald/internal/script"
)

// Severity classifies a notification. It only influences the fallback icon,
// the tray glyph and the no-backend dialog rule; backends that cannot
// express it ignore it.
type Severity int

const (
	// SeverityInformation is a routine, low-urgency notification.
	SeverityInformation Severity = iota
	// SeverityWarning signals a condition the user should look at.
	SeverityWarning
	// SeverityCritical signals a condition that must not be missed.
	SeverityCritical
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInformation:
		return "information"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity string.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "information", "info", "":
		return SeverityInformation, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "critical", "error":
		return SeverityCritical, nil
	default:
		return SeverityInformation, fmt.Errorf("invalid severity: %s", s)
	}
}

// Mode identifies the notification backend a Notificator is committed to.
// Exactly one mode holds for the lifetime of a Notificator.
type Mode int

const (
	// ModeNone means no backend is available; critical notifications
	// degrade to a blocking modal dialog, everything else is dropped.
	ModeNone Mode = iota
	// ModeSystemTray shows balloon messages through a tray icon widget.
	ModeSystemTray
	// ModeFreedesktopDBus talks to org.freedesktop.Notifications.
	ModeFreedesktopDBus
	// ModeNotificationCenter uses the macOS user notification center.
	ModeNotificationCenter
	// ModeGrowlModern scripts the Growl.app notifier (Growl 1.3+).
	ModeGrowlModern
	// ModeGrowlLegacy scripts the GrowlHelperApp notifier (Growl 1.2).
	ModeGrowlLegacy
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeSystemTray:
		return "system-tray"
	case ModeFreedesktopDBus:
		return "freedesktop-dbus"
	case ModeNotificationCenter:
		return "notification-center"
	case ModeGrowlModern:
		return "growl"
	case ModeGrowlLegacy:
		return "growl-legacy"
	default:
		return "unknown"
	}
}

// ParseMode parses a backend mode name as it appears in configuration.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "none":
		return ModeNone, nil
	case "system-tray", "tray":
		return ModeSystemTray, nil
	case "freedesktop-dbus", "dbus":
		return ModeFreedesktopDBus, nil
	case "notification-center":
		return ModeNotificationCenter, nil
	case "growl":
		return ModeGrowlModern, nil
	case "growl-legacy":
		return ModeGrowlLegacy, nil
	default:
		return ModeNone, fmt.Errorf("invalid backend mode: %s", s)
	}
}

// Capabilities describes which notification backends are reachable on the
// current host. It is probed once at construction and never re-queried.
type Capabilities struct {
	// TrayMessages is true when a tray icon widget was supplied and it
	// reports balloon message support.
	TrayMessages bool
	// DBus is true when the freedesktop notification service is reachable
	// on the session bus.
	DBus bool
	// NotificationCenter is true when the macOS user notification center
	// can be used.
	NotificationCenter bool
	// Growl holds the detected Growl variant (ModeGrowlModern or
	// ModeGrowlLegacy), or ModeNone when no Growl installation was found.
	Growl Mode
}

// Mode ranks the probed capabilities into the single backend mode used for
// the Notificator's lifetime. The notification center beats Growl on macOS,
// the freedesktop service beats a tray balloon on Linux desktops, and a tray
// balloon beats nothing at all.
func (c Capabilities) Mode() Mode {
	switch {
	case c.NotificationCenter:
		return ModeNotificationCenter
	case c.Growl == ModeGrowlModern || c.Growl == ModeGrowlLegacy:
		return c.Growl
	case c.DBus:
		return ModeFreedesktopDBus
	case c.TrayMessages:
		return ModeSystemTray
	default:
		return ModeNone
	}
}

// IconLookup supplies a fallback icon image for a severity when a
// notification carries none.
type IconLookup func(Severity) image.Image

// Config holds the values a Notificator needs from its host application.
type Config struct {
	// AppName is the program name reported to notification services.
	AppName string
	// Tray is an optional, externally owned tray icon widget. It must
	// outlive the Notificator.
	Tray TrayIcon
	// IconLookup provides severity fallback icons. Defaults to the
	// built-in glyphs when nil.
	IconLookup IconLookup
	// Disabled lists backend modes that must not be probed or selected.
	Disabled []Mode
}

// Option configures a Notificator.
type Option func(*Notificator)

// WithCapabilities pins the probe results instead of querying the host.
func WithCapabilities(caps Capabilities) Option {
	return func(n *Notificator) {
		n.caps = &caps
	}
}

// WithBusObject sets the DBus notification service object (for testing).
func WithBusObject(obj BusObject) Option {
	return func(n *Notificator) {
		n.bus = obj
	}
}

// WithScriptRunner sets the AppleScript execution bridge (for testing).
func WithScriptRunner(r script.Runner) Option {
	return func(n *Notificator) {
		n.runner = r
	}
}

// WithDialog sets the blocking modal dialog shown for critical
// notifications when no backend is available.
func WithDialog(fn DialogFunc) Option {
	return func(n *Notificator) {
		n.dialog = fn
	}
}

// WithNotificationCenter sets the native user-notification call (for testing).
func WithNotificationCenter(fn NotifyFunc) Option {
	return func(n *Notificator) {
		n.center = fn
	}
}

// Notificator routes notifications to the backend selected at construction.
// It is not safe for concurrent use; callers are expected to invoke it from
// a single UI thread.
type Notificator struct {
	appName    string
	mode       Mode
	tray       TrayIcon
	iconLookup IconLookup
	runner     script.Runner
	center     NotifyFunc
	dialog     DialogFunc

	bus       BusObject
	busCloser busCloser

	caps *Capabilities
}

// New creates a Notificator for the given configuration. It probes the host
// for available backends exactly once and commits to the best one; no error
// is raised when nothing is available, the mode simply stays ModeNone.
func New(cfg Config, opts ...Option) *Notificator {
	n := &Notificator{
		appName:    cfg.AppName,
		tray:       cfg.Tray,
		iconLookup: cfg.IconLookup,
		runner:     script.NewRunner(),
		center:     notificationCenter,
		dialog:     modalDialog,
	}
	if n.iconLookup == nil {
		n.iconLookup = StandardIcon
	}

	for _, opt := range opts {
		opt(n)
	}

	caps := n.caps
	if caps == nil {
		probed := n.probe(cfg.Disabled)
		caps = &probed
	}
	n.mode = caps.Mode()

	if n.mode == ModeFreedesktopDBus && n.bus == nil {
		if obj, closer, err := connectNotificationService(); err == nil {
			n.bus = obj
			n.busCloser = closer
		}
	}
	if n.mode != ModeFreedesktopDBus && n.busCloser != nil {
		// A probe connection that lost the mode ranking is not needed.
		n.busCloser.Close()
		n.bus = nil
		n.busCloser = nil
	}

	return n
}

// Mode returns the backend mode selected at construction.
func (n *Notificator) Mode() Mode {
	return n.mode
}

// Notify shows a notification through the selected backend. icon may be
// nil, in which case backends that display icons substitute a severity
// glyph. Failures are invisible to the caller: every backend call is
// best-effort and nothing is retried.
func (n *Notificator) Notify(severity Severity, title, body string, icon image.Image, timeout time.Duration) {
	switch n.mode {
	case ModeFreedesktopDBus:
		n.sendDBus(severity, title, body, icon, timeout)
	case ModeSystemTray:
		n.sendTray(severity, title, body, timeout)
	case ModeNotificationCenter:
		n.sendNotificationCenter(title, body)
	case ModeGrowlModern, ModeGrowlLegacy:
		n.sendGrowl(severity, title, body, icon)
	default:
		n.sendFallback(severity, title, body)
	}
}

// Close releases the DBus connection owned by the Notificator, if any.
func (n *Notificator) Close() error {
	if n.busCloser != nil {
		err := n.busCloser.Close()
		n.busCloser = nil
		return err
	}
	return nil
}

// probe queries the host for available backends, honoring the disabled
// list. The DBus probe keeps the connection it established so a selected
// DBus mode does not have to dial twice.
func (n *Notificator) probe(disabled []Mode) Capabilities {
	var caps Capabilities

	if !modeDisabled(ModeSystemTray, disabled) && n.tray != nil && n.tray.SupportsMessages() {
		caps.TrayMessages = true
	}

	if !modeDisabled(ModeFreedesktopDBus, disabled) {
		if obj, closer, err := connectNotificationService(); err == nil {
			caps.DBus = true
			n.bus = obj
			n.busCloser = closer
		}
	}

	if onDarwin() {
		if !modeDisabled(ModeNotificationCenter, disabled) {
			if _, err := n.runner.LookPath(script.OsascriptBinary); err == nil {
				caps.NotificationCenter = true
			}
		}
		if !caps.NotificationCenter {
			caps.Growl = probeGrowlIn(growlSearchDirs(), disabled)
		}
	}

	return caps
}

func modeDisabled(m Mode, disabled []Mode) bool {
	for _, d := range disabled {
		if d == m {
			return true
		}
	}
	return false
}
