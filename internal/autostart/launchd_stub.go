//go:build !darwin

package autostart

// LaunchdManager is a stub for non-macOS platforms.
type LaunchdManager struct{}

// NewLaunchdManager creates a stub launchd manager.
func NewLaunchdManager(cfg Config) *LaunchdManager {
	return &LaunchdManager{}
}

// Install is not supported on this platform.
func (m *LaunchdManager) Install() error { return ErrNotSupported }

// Uninstall is not supported on this platform.
func (m *LaunchdManager) Uninstall() error { return ErrNotSupported }

// IsInstalled is not supported on this platform.
func (m *LaunchdManager) IsInstalled() (bool, error) { return false, ErrNotSupported }

// Start is not supported on this platform.
func (m *LaunchdManager) Start() error { return ErrNotSupported }

// Stop is not supported on this platform.
func (m *LaunchdManager) Stop() error { return ErrNotSupported }

// Status is not supported on this platform.
func (m *LaunchdManager) Status() (Status, error) {
	return Status{}, ErrNotSupported
}

// EntryFilePath is not supported on this platform.
func (m *LaunchdManager) EntryFilePath() string { return "" }
