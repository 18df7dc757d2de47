package notify

import (
	"context"
	"image"
	"io"
	"testing"
	"time"

	"github.com/xabinapal/herald/internal/script"
)

// fakeTray is a mock TrayIcon for testing.
type fakeTray struct {
	supported bool
	messages  []trayMessage
}

type trayMessage struct {
	title   string
	body    string
	icon    MessageIcon
	timeout time.Duration
}

func (t *fakeTray) SupportsMessages() bool {
	return t.supported
}

func (t *fakeTray) ShowMessage(title, body string, icon MessageIcon, timeout time.Duration) {
	t.messages = append(t.messages, trayMessage{title, body, icon, timeout})
}

// fakeRunner is a mock script.Runner for testing.
type fakeRunner struct {
	lookPathErr error
	scripts     []string
	runErr      error
}

func (r *fakeRunner) LookPath(file string) (string, error) {
	if r.lookPathErr != nil {
		return "", r.lookPathErr
	}
	return "/usr/bin/" + file, nil
}

func (r *fakeRunner) CommandContext(ctx context.Context, name string, args ...string) script.Command {
	return &fakeCommand{runner: r, args: args}
}

// fakeCommand records the script passed to osascript.
type fakeCommand struct {
	runner *fakeRunner
	args   []string
}

func (c *fakeCommand) SetStdin(io.Reader)  {}
func (c *fakeCommand) SetStdout(io.Writer) {}
func (c *fakeCommand) SetStderr(io.Writer) {}
func (c *fakeCommand) Run() error {
	if len(c.args) == 2 && c.args[0] == "-e" {
		c.runner.scripts = append(c.runner.scripts, c.args[1])
	}
	return c.runner.runErr
}

// allBackendsDisabled keeps construction deterministic in tests regardless
// of what the host actually offers.
var allBackendsDisabled = []Mode{
	ModeSystemTray,
	ModeFreedesktopDBus,
	ModeNotificationCenter,
	ModeGrowlModern,
	ModeGrowlLegacy,
}

func TestCapabilitiesModeRanking(t *testing.T) {
	tests := []struct {
		name string
		caps Capabilities
		want Mode
	}{
		{"nothing", Capabilities{}, ModeNone},
		{"tray only", Capabilities{TrayMessages: true}, ModeSystemTray},
		{"dbus only", Capabilities{DBus: true}, ModeFreedesktopDBus},
		{"dbus beats tray", Capabilities{TrayMessages: true, DBus: true}, ModeFreedesktopDBus},
		{"center beats everything", Capabilities{TrayMessages: true, DBus: true, NotificationCenter: true}, ModeNotificationCenter},
		{"modern growl beats dbus and tray", Capabilities{TrayMessages: true, DBus: true, Growl: ModeGrowlModern}, ModeGrowlModern},
		{"legacy growl", Capabilities{Growl: ModeGrowlLegacy}, ModeGrowlLegacy},
		{"center beats growl", Capabilities{NotificationCenter: true, Growl: ModeGrowlModern}, ModeNotificationCenter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caps.Mode(); got != tt.want {
				t.Errorf("Mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSelectsSystemTray(t *testing.T) {
	tray := &fakeTray{supported: true}
	disabled := []Mode{ModeFreedesktopDBus, ModeNotificationCenter, ModeGrowlModern, ModeGrowlLegacy}

	n := New(Config{AppName: "test", Tray: tray, Disabled: disabled})
	defer n.Close()

	if n.Mode() != ModeSystemTray {
		t.Errorf("Mode() = %v, want %v", n.Mode(), ModeSystemTray)
	}
}

func TestNewIgnoresTrayWithoutMessageSupport(t *testing.T) {
	tray := &fakeTray{supported: false}
	disabled := []Mode{ModeFreedesktopDBus, ModeNotificationCenter, ModeGrowlModern, ModeGrowlLegacy}

	n := New(Config{AppName: "test", Tray: tray, Disabled: disabled})
	defer n.Close()

	if n.Mode() != ModeNone {
		t.Errorf("Mode() = %v, want %v", n.Mode(), ModeNone)
	}
}

func TestNewNoBackends(t *testing.T) {
	n := New(Config{AppName: "test", Disabled: allBackendsDisabled})
	defer n.Close()

	if n.Mode() != ModeNone {
		t.Errorf("Mode() = %v, want %v", n.Mode(), ModeNone)
	}
}

func TestNewPinnedCapabilitiesPreferDBusOverTray(t *testing.T) {
	tray := &fakeTray{supported: true}
	n := New(Config{AppName: "test", Tray: tray},
		WithCapabilities(Capabilities{TrayMessages: true, DBus: true}),
		WithBusObject(&mockBusObject{}))
	defer n.Close()

	if n.Mode() != ModeFreedesktopDBus {
		t.Errorf("Mode() = %v, want %v", n.Mode(), ModeFreedesktopDBus)
	}
}

func TestNotifyTrayMapsSeverityToMessageIcon(t *testing.T) {
	tests := []struct {
		severity Severity
		want     MessageIcon
	}{
		{SeverityInformation, IconInformation},
		{SeverityWarning, IconWarning},
		{SeverityCritical, IconCritical},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			tray := &fakeTray{supported: true}
			n := New(Config{AppName: "test", Tray: tray},
				WithCapabilities(Capabilities{TrayMessages: true}))
			defer n.Close()

			n.Notify(tt.severity, "title", "body", nil, 3*time.Second)

			if len(tray.messages) != 1 {
				t.Fatalf("expected 1 tray message, got %d", len(tray.messages))
			}
			msg := tray.messages[0]
			if msg.icon != tt.want {
				t.Errorf("icon = %v, want %v", msg.icon, tt.want)
			}
			if msg.title != "title" || msg.body != "body" {
				t.Errorf("unexpected message content: %+v", msg)
			}
			if msg.timeout != 3*time.Second {
				t.Errorf("timeout = %v, want %v", msg.timeout, 3*time.Second)
			}
		})
	}
}

func TestNotifyTrayIgnoresCustomIcon(t *testing.T) {
	tray := &fakeTray{supported: true}
	n := New(Config{AppName: "test", Tray: tray},
		WithCapabilities(Capabilities{TrayMessages: true}))
	defer n.Close()

	icon := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	n.Notify(SeverityInformation, "title", "body", icon, time.Second)

	if len(tray.messages) != 1 {
		t.Fatalf("expected 1 tray message, got %d", len(tray.messages))
	}
}

func TestNotifyNotificationCenterForwardsTitleAndBody(t *testing.T) {
	var gotTitle, gotBody string
	n := New(Config{AppName: "test"},
		WithCapabilities(Capabilities{NotificationCenter: true}),
		WithNotificationCenter(func(title, body string) error {
			gotTitle, gotBody = title, body
			return nil
		}))
	defer n.Close()

	// Severity and icon are accepted but ignored by this backend.
	n.Notify(SeverityCritical, "Disk failure", "Backup now", image.NewNRGBA(image.Rect(0, 0, 8, 8)), time.Second)

	if gotTitle != "Disk failure" {
		t.Errorf("title = %q, want %q", gotTitle, "Disk failure")
	}
	if gotBody != "Backup now" {
		t.Errorf("body = %q, want %q", gotBody, "Backup now")
	}
}

func TestNotifyNoneCriticalShowsBlockingDialog(t *testing.T) {
	dismissed := false
	n := New(Config{AppName: "test", Disabled: allBackendsDisabled},
		WithDialog(func(title, body string) {
			// Simulate the user taking a moment to dismiss the dialog.
			time.Sleep(10 * time.Millisecond)
			dismissed = true
		}))
	defer n.Close()

	n.Notify(SeverityCritical, "title", "body", nil, time.Second)

	// Notify must not return before the dialog was dismissed.
	if !dismissed {
		t.Error("Notify returned before the dialog was dismissed")
	}
}

func TestNotifyNoneDropsNonCritical(t *testing.T) {
	for _, severity := range []Severity{SeverityInformation, SeverityWarning} {
		t.Run(severity.String(), func(t *testing.T) {
			n := New(Config{AppName: "test", Disabled: allBackendsDisabled},
				WithDialog(func(title, body string) {
					t.Error("dialog shown for non-critical severity")
				}))
			defer n.Close()

			n.Notify(severity, "title", "body", nil, time.Second)
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input   string
		want    Severity
		wantErr bool
	}{
		{"info", SeverityInformation, false},
		{"information", SeverityInformation, false},
		{"", SeverityInformation, false},
		{"warn", SeverityWarning, false},
		{"warning", SeverityWarning, false},
		{"critical", SeverityCritical, false},
		{"error", SeverityCritical, false},
		{"bogus", SeverityInformation, true},
	}

	for _, tt := range tests {
		got, err := ParseSeverity(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSeverity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestModeString(t *testing.T) {
	modes := map[Mode]string{
		ModeNone:               "none",
		ModeSystemTray:         "system-tray",
		ModeFreedesktopDBus:    "freedesktop-dbus",
		ModeNotificationCenter: "notification-center",
		ModeGrowlModern:        "growl",
		ModeGrowlLegacy:        "growl-legacy",
	}
	for mode, want := range modes {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}
