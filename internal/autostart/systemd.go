//go:build linux

package autostart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"
)

const systemdServiceTemplate = `[Unit]
Description=Herald notification tray
Documentation=https://github.com/xabinapal/herald
After=graphical-session.target

[Service]
Type=simple
ExecStart={{.ExecutablePath}} tray
Restart=on-failure
RestartSec=5

[Install]
WantedBy=default.target
`

// SystemdManager manages systemd user services on Linux.
type SystemdManager struct {
	cfg         Config
	servicePath string
}

// NewSystemdManager creates a new systemd manager.
func NewSystemdManager(cfg Config) *SystemdManager {
	// Use XDG_CONFIG_HOME or default
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		//nolint:errcheck // Fall back to current directory if home dir unavailable
		homeDir, _ := os.UserHomeDir()
		configHome = filepath.Join(homeDir, ".config")
	}

	servicePath := filepath.Join(configHome, "systemd", "user", "herald.service")

	return &SystemdManager{
		cfg:         cfg,
		servicePath: servicePath,
	}
}

// Install installs the systemd user service.
func (m *SystemdManager) Install() error {
	// Ensure directory exists
	dir := filepath.Dir(m.servicePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create systemd user directory: %w", err)
	}

	// Generate service file
	tmpl, err := template.New("service").Parse(systemdServiceTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := struct {
		ExecutablePath string
	}{
		ExecutablePath: m.cfg.ExecutablePath,
	}

	f, err := os.Create(m.servicePath)
	if err != nil {
		return fmt.Errorf("failed to create service file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to write service file: %w", err)
	}

	// Reload systemd
	if err := exec.Command("systemctl", "--user", "daemon-reload").Run(); err != nil {
		return fmt.Errorf("failed to reload systemd: %w", err)
	}

	// Enable the service
	if err := exec.Command("systemctl", "--user", "enable", "herald.service").Run(); err != nil {
		return fmt.Errorf("failed to enable service: %w", err)
	}

	// Start the service
	if err := exec.Command("systemctl", "--user", "start", "herald.service").Run(); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}

	return nil
}

// Uninstall removes the systemd user service.
func (m *SystemdManager) Uninstall() error {
	// Stop the service (best effort)
	//nolint:errcheck // Ignore errors - service might not be running
	_ = exec.Command("systemctl", "--user", "stop", "herald.service").Run()

	// Disable the service (best effort)
	//nolint:errcheck // Ignore errors - service might not be enabled
	_ = exec.Command("systemctl", "--user", "disable", "herald.service").Run()

	// Remove service file
	if err := os.Remove(m.servicePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove service file: %w", err)
	}

	// Reload systemd (best effort)
	//nolint:errcheck // Ignore errors - reload might fail if service already removed
	_ = exec.Command("systemctl", "--user", "daemon-reload").Run()

	return nil
}

// IsInstalled checks if the systemd service is installed.
func (m *SystemdManager) IsInstalled() (bool, error) {
	_, err := os.Stat(m.servicePath)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Start starts the systemd service.
func (m *SystemdManager) Start() error {
	return exec.Command("systemctl", "--user", "start", "herald.service").Run()
}

// Stop stops the systemd service.
func (m *SystemdManager) Stop() error {
	return exec.Command("systemctl", "--user", "stop", "herald.service").Run()
}

// Status returns the current status of the systemd service.
func (m *SystemdManager) Status() (Status, error) {
	status := Status{}

	installed, err := m.IsInstalled()
	if err != nil {
		return status, err
	}
	status.Installed = installed

	if !installed {
		return status, nil
	}

	// Check status
	cmd := exec.Command("systemctl", "--user", "is-active", "herald.service")
	//nolint:errcheck // Best effort - if command fails, service is not active
	output, _ := cmd.Output()
	status.Running = strings.TrimSpace(string(output)) == "active"

	// Get PID if running
	if status.Running {
		cmd := exec.Command("systemctl", "--user", "show", "-p", "MainPID", "herald.service")
		if output, err := cmd.Output(); err == nil {
			var pid int
			//nolint:errcheck // Best effort - if parsing fails, PID remains 0
			_, _ = fmt.Sscanf(string(output), "MainPID=%d", &pid)
			if pid > 0 {
				status.PID = pid
			}
		}
	}

	return status, nil
}

// EntryFilePath returns the path to the service file.
func (m *SystemdManager) EntryFilePath() string {
	return m.servicePath
}
