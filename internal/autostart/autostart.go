// Package autostart provides platform-specific login-item management for the tray process.
package autostart

import (
	"fmt"
	"runtime"
)

// Manager provides login-item installation and management.
type Manager interface {
	// Install registers the tray process to start at login.
	Install() error
	// Uninstall removes the login item.
	Uninstall() error
	// IsInstalled checks if the login item is registered.
	IsInstalled() (bool, error)
	// Start starts the tray process through the platform service system.
	Start() error
	// Stop stops the tray process.
	Stop() error
	// Status returns the login item status.
	Status() (Status, error)
	// EntryFilePath returns the path to the login item definition file.
	EntryFilePath() string
}

// Status represents the current status of the login item.
type Status struct {
	Installed bool   `json:"installed"`
	Running   bool   `json:"running"`
	PID       int    `json:"pid,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Config holds configuration for login item installation.
type Config struct {
	// ExecutablePath is the path to the herald binary.
	ExecutablePath string
	// LogPath is the path for tray process logs.
	LogPath string
}

// NewManager creates a platform-appropriate login item manager.
func NewManager(cfg Config) (Manager, error) {
	switch runtime.GOOS {
	case "darwin":
		return NewLaunchdManager(cfg), nil
	case "linux":
		return NewSystemdManager(cfg), nil
	case "windows":
		return NewWindowsManager(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// PlatformName returns a human-readable name for the login item system.
func PlatformName() string {
	switch runtime.GOOS {
	case "darwin":
		return "launchd"
	case "linux":
		return "systemd"
	case "windows":
		return "Task Scheduler"
	default:
		return "unknown"
	}
}

// ErrNotSupported is returned when an operation is not supported on the current platform.
var ErrNotSupported = fmt.Errorf("not supported on this platform")
