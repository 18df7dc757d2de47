package notify

import "github.com/ncruces/zenity"

// DialogFunc shows a modal dialog and blocks until the user dismisses it.
type DialogFunc func(title, body string)

func modalDialog(title, body string) {
	// Dismissal is the only outcome we care about.
	_ = zenity.Error(body, zenity.Title(title), zenity.ErrorIcon)
}

// sendFallback is the mode=None path: critical notifications degrade to a
// blocking modal dialog, everything else is dropped without a signal.
func (n *Notificator) sendFallback(severity Severity, title, body string) {
	if severity != SeverityCritical {
		return
	}
	n.dialog(title, body)
}
