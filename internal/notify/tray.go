package notify

import "time"

// MessageIcon identifies the glyph a tray widget shows next to a balloon
// message.
type MessageIcon int

const (
	// NoIcon shows no glyph.
	NoIcon MessageIcon = iota
	// IconInformation shows the information glyph.
	IconInformation
	// IconWarning shows the warning glyph.
	IconWarning
	// IconCritical shows the critical glyph.
	IconCritical
)

// TrayIcon is the subset of a system tray widget the Notificator uses. The
// widget is owned by the host application and must stay alive for the
// Notificator's lifetime.
type TrayIcon interface {
	// SupportsMessages reports whether the widget can display balloon
	// messages on this platform.
	SupportsMessages() bool
	// ShowMessage displays a balloon message next to the tray icon.
	ShowMessage(title, body string, icon MessageIcon, timeout time.Duration)
}

// sendTray delegates to the tray widget's balloon message display. The tray
// backend cannot show custom icon images; only the severity glyph is mapped.
func (n *Notificator) sendTray(severity Severity, title, body string, timeout time.Duration) {
	if n.tray == nil {
		return
	}

	icon := NoIcon
	switch severity {
	case SeverityInformation:
		icon = IconInformation
	case SeverityWarning:
		icon = IconWarning
	case SeverityCritical:
		icon = IconCritical
	}

	n.tray.ShowMessage(title, body, icon, timeout)
}
