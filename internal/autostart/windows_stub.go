//go:build !windows

package autostart

// WindowsManager is a stub for non-Windows platforms.
type WindowsManager struct{}

// NewWindowsManager creates a stub Windows manager.
func NewWindowsManager(cfg Config) *WindowsManager {
	return &WindowsManager{}
}

// Install is not supported on this platform.
func (m *WindowsManager) Install() error { return ErrNotSupported }

// Uninstall is not supported on this platform.
func (m *WindowsManager) Uninstall() error { return ErrNotSupported }

// IsInstalled is not supported on this platform.
func (m *WindowsManager) IsInstalled() (bool, error) { return false, ErrNotSupported }

// Start is not supported on this platform.
func (m *WindowsManager) Start() error { return ErrNotSupported }

// Stop is not supported on this platform.
func (m *WindowsManager) Stop() error { return ErrNotSupported }

// Status is not supported on this platform.
func (m *WindowsManager) Status() (Status, error) {
	return Status{}, ErrNotSupported
}

// EntryFilePath is not supported on this platform.
func (m *WindowsManager) EntryFilePath() string { return "" }
