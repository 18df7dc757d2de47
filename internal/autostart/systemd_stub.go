//go:build !linux

package autostart

// SystemdManager is a stub for non-Linux platforms.
type SystemdManager struct{}

// NewSystemdManager creates a stub systemd manager.
func NewSystemdManager(cfg Config) *SystemdManager {
	return &SystemdManager{}
}

// Install is not supported on this platform.
func (m *SystemdManager) Install() error { return ErrNotSupported }

// Uninstall is not supported on this platform.
func (m *SystemdManager) Uninstall() error { return ErrNotSupported }

// IsInstalled is not supported on this platform.
func (m *SystemdManager) IsInstalled() (bool, error) { return false, ErrNotSupported }

// Start is not supported on this platform.
func (m *SystemdManager) Start() error { return ErrNotSupported }

// Stop is not supported on this platform.
func (m *SystemdManager) Stop() error { return ErrNotSupported }

// Status is not supported on this platform.
func (m *SystemdManager) Status() (Status, error) {
	return Status{}, ErrNotSupported
}

// EntryFilePath is not supported on this platform.
func (m *SystemdManager) EntryFilePath() string { return "" }
