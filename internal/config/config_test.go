package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.AppName != AppName {
		t.Errorf("expected AppName %q, got %q", AppName, cfg.AppName)
	}

	if cfg.DefaultTimeoutMS != 5000 {
		t.Errorf("expected DefaultTimeoutMS 5000, got %d", cfg.DefaultTimeoutMS)
	}
	if cfg.Timeout() != 5*time.Second {
		t.Errorf("expected Timeout %v, got %v", 5*time.Second, cfg.Timeout())
	}

	if cfg.Log.Level != "info" {
		t.Errorf("expected log level info, got %q", cfg.Log.Level)
	}
}

func TestLoadNonExistent(t *testing.T) {
	// Load from non-existent file should return defaults
	tmpDir := t.TempDir()
	oldEnv := os.Getenv("HERALD_CONFIG_DIR")
	os.Setenv("HERALD_CONFIG_DIR", tmpDir)
	defer os.Setenv("HERALD_CONFIG_DIR", oldEnv)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Should have defaults
	if cfg.DefaultTimeoutMS != 5000 {
		t.Errorf("expected default timeout, got %d", cfg.DefaultTimeoutMS)
	}
}

func TestLoadFrom(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	content := `app_name: my-app
icon: /tmp/icon.png
default_timeout_ms: 10000
disabled_backends:
  - growl
  - growl-legacy
log:
  level: debug
  json: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.AppName != "my-app" {
		t.Errorf("AppName = %q, want %q", cfg.AppName, "my-app")
	}
	if cfg.Icon != "/tmp/icon.png" {
		t.Errorf("Icon = %q, want %q", cfg.Icon, "/tmp/icon.png")
	}
	if cfg.Timeout() != 10*time.Second {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout(), 10*time.Second)
	}
	if len(cfg.DisabledBackends) != 2 {
		t.Errorf("DisabledBackends = %v, want 2 entries", cfg.DisabledBackends)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Log = %+v, want debug/json", cfg.Log)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("app_name: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromUnknownBackend(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	content := "disabled_backends:\n  - balloonophone\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected error for unknown backend name")
	}
	if !strings.Contains(err.Error(), "balloonophone") {
		t.Errorf("error should name the offending backend, got: %v", err)
	}
}

func TestValidateNegativeTimeout(t *testing.T) {
	cfg := Default()
	cfg.DefaultTimeoutMS = -1000

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative default_timeout_ms")
	}
}

func TestSaveAndReload(t *testing.T) {
	tmpDir := t.TempDir()
	oldEnv := os.Getenv("HERALD_CONFIG_DIR")
	os.Setenv("HERALD_CONFIG_DIR", tmpDir)
	defer os.Setenv("HERALD_CONFIG_DIR", oldEnv)

	cfg := Default()
	cfg.AppName = "saved-app"
	cfg.DisabledBackends = []string{"dbus"}

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if reloaded.AppName != "saved-app" {
		t.Errorf("AppName = %q, want %q", reloaded.AppName, "saved-app")
	}
	if len(reloaded.DisabledBackends) != 1 || reloaded.DisabledBackends[0] != "dbus" {
		t.Errorf("DisabledBackends = %v, want [dbus]", reloaded.DisabledBackends)
	}
}

func TestGetPathsUsesOverride(t *testing.T) {
	tmpDir := t.TempDir()
	oldEnv := os.Getenv("HERALD_CONFIG_DIR")
	os.Setenv("HERALD_CONFIG_DIR", tmpDir)
	defer os.Setenv("HERALD_CONFIG_DIR", oldEnv)

	paths := GetPaths()
	if paths.ConfigDir != tmpDir {
		t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, tmpDir)
	}
	if paths.ConfigFile != filepath.Join(tmpDir, ConfigFileName) {
		t.Errorf("ConfigFile = %q, want under override dir", paths.ConfigFile)
	}
}

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()
	paths := Paths{
		ConfigDir:  filepath.Join(tmpDir, "cfg"),
		DataDir:    filepath.Join(tmpDir, "data"),
		ConfigFile: filepath.Join(tmpDir, "cfg", ConfigFileName),
	}

	if err := paths.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs() failed: %v", err)
	}

	for _, dir := range []string{paths.ConfigDir, paths.DataDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %q not created", dir)
		}
	}
}
