package notify

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"runtime"

	"github.com/xabinapal/herald/internal/script"
)

// Registration and notification in one script, the way Growl's scripting
// interface expects it. %[1]s application name, %[2]s title, %[3]s body,
// %[4]s optional icon clause, %[5]s script target app.
const growlScript = `tell application "%[5]s"
	set the allNotificationsList to {"Notification"}
	set the enabledNotificationsList to {"Notification"}
	register as application "%[1]s" all notifications allNotificationsList default notifications enabledNotificationsList
	notify with name "Notification" title "%[2]s" description "%[3]s" application name "%[1]s"%[4]s
end tell`

const (
	growlModernApp = "Growl"
	growlLegacyApp = "GrowlHelperApp"
)

func onDarwin() bool {
	return runtime.GOOS == "darwin"
}

// growlSearchDirs lists the application folders probed for a Growl install.
func growlSearchDirs() []string {
	dirs := []string{"/Applications"}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Applications"))
	}
	return dirs
}

// probeGrowlIn looks for a Growl installation under the given application
// folders. Growl.app identifies the 1.3+ variant, GrowlHelperApp.app the
// legacy 1.2 one.
func probeGrowlIn(dirs []string, disabled []Mode) Mode {
	for _, dir := range dirs {
		if !modeDisabled(ModeGrowlModern, disabled) {
			if info, err := os.Stat(filepath.Join(dir, growlModernApp+".app")); err == nil && info.IsDir() {
				return ModeGrowlModern
			}
		}
		if !modeDisabled(ModeGrowlLegacy, disabled) {
			if info, err := os.Stat(filepath.Join(dir, growlLegacyApp+".app")); err == nil && info.IsDir() {
				return ModeGrowlLegacy
			}
		}
	}
	return ModeNone
}

// ProbeGrowl reports which Growl variant is installed, if any. Intended
// for diagnostics.
func ProbeGrowl() Mode {
	if !onDarwin() {
		return ModeNone
	}
	return probeGrowlIn(growlSearchDirs(), nil)
}

// sendGrowl registers the application with the detected Growl variant and
// sends a named notification through its scripting interface. A failed icon
// render degrades to an icon-less notification; a failed script run is
// swallowed entirely.
func (n *Notificator) sendGrowl(severity Severity, title, body string, icon image.Image) {
	target := growlLegacyApp
	if n.mode == ModeGrowlModern {
		target = growlModernApp
	}

	app := n.appName
	if app == "" {
		app = "Application"
	}

	img := icon
	if img == nil {
		img = n.iconLookup(severity)
	}

	iconClause := ""
	if path, err := writeTempPNG(img); err == nil {
		defer os.Remove(path)
		iconClause = fmt.Sprintf(" image from location \"file://%s\"", path)
	}

	source := fmt.Sprintf(growlScript, app, script.Quote(title), script.Quote(body), iconClause, target)

	// Best effort; the notification is lost if the script fails.
	_ = script.RunAppleScript(context.Background(), n.runner, source)
}

// writeTempPNG renders an image to a temporary PNG file and returns its
// path. The caller removes the file once the consumer is done with it.
func writeTempPNG(img image.Image) (string, error) {
	if img == nil {
		return "", errors.New("no icon image")
	}

	f, err := os.CreateTemp("", "herald-icon-*.png")
	if err != nil {
		return "", err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}

	return f.Name(), nil
}
