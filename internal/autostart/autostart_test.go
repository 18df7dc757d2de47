package autostart

import (
	"runtime"
	"testing"
)

func TestPlatformName(t *testing.T) {
	name := PlatformName()

	switch runtime.GOOS {
	case "darwin":
		if name != "launchd" {
			t.Errorf("PlatformName() = %q, want %q on darwin", name, "launchd")
		}
	case "linux":
		if name != "systemd" {
			t.Errorf("PlatformName() = %q, want %q on linux", name, "systemd")
		}
	case "windows":
		if name != "Task Scheduler" {
			t.Errorf("PlatformName() = %q, want %q on windows", name, "Task Scheduler")
		}
	default:
		if name != "unknown" {
			t.Errorf("PlatformName() = %q, want %q on %s", name, "unknown", runtime.GOOS)
		}
	}
}

func TestNewManager(t *testing.T) {
	cfg := Config{
		ExecutablePath: "/usr/local/bin/herald",
		LogPath:        "/tmp/herald.log",
	}

	mgr, err := NewManager(cfg)

	switch runtime.GOOS {
	case "darwin", "linux", "windows":
		if err != nil {
			t.Errorf("NewManager() error = %v on supported platform %s", err, runtime.GOOS)
		}
		if mgr == nil {
			t.Error("NewManager() returned nil on supported platform")
		}
	default:
		if err == nil {
			t.Error("NewManager() expected error on unsupported platform")
		}
	}
}

func TestStatus(t *testing.T) {
	status := Status{
		Installed: true,
		Running:   true,
		PID:       12345,
	}

	if !status.Installed {
		t.Error("Status.Installed should be true")
	}
	if !status.Running {
		t.Error("Status.Running should be true")
	}
	if status.PID != 12345 {
		t.Errorf("Status.PID = %d, want 12345", status.PID)
	}
}
