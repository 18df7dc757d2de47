package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/xabinapal/herald/internal/autostart"
	"github.com/xabinapal/herald/internal/config"
	"github.com/xabinapal/herald/internal/notify"
	"github.com/xabinapal/herald/internal/script"
)

// CheckResult represents the result of a diagnostic check.
type CheckResult struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
	Fix     string      `json:"fix,omitempty"`
}

// CheckStatus represents the status of a diagnostic check.
type CheckStatus int

const (
	// CheckOK indicates the check passed.
	CheckOK CheckStatus = iota
	// CheckWarning indicates a non-critical issue.
	CheckWarning
	// CheckError indicates a critical failure.
	CheckError
	// CheckSkipped indicates the check was skipped.
	CheckSkipped
)

// String returns the status name.
func (s CheckStatus) String() string {
	switch s {
	case CheckOK:
		return "OK"
	case CheckWarning:
		return "WARN"
	case CheckError:
		return "ERROR"
	case CheckSkipped:
		return "SKIP"
	default:
		return "UNKNOWN"
	}
}

// Icon returns the status icon for display.
func (s CheckStatus) Icon() string {
	switch s {
	case CheckOK:
		return "[OK]"
	case CheckWarning:
		return "[!!]"
	case CheckError:
		return "[XX]"
	case CheckSkipped:
		return "[--]"
	default:
		return "[??]"
	}
}

// MarshalJSON implements json.Marshaler.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// DoctorOutput represents the doctor command output for JSON.
type DoctorOutput struct {
	Checks      []CheckResult `json:"checks"`
	HasErrors   bool          `json:"has_errors"`
	HasWarnings bool          `json:"has_warnings"`
}

// newDoctorCmd creates the doctor command.
func (cli *CLI) newDoctorCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose common issues",
		Long: `Run diagnostic checks to identify and troubleshoot common issues.

The doctor command checks:
  - Configuration file validity
  - Freedesktop notification service on the session bus
  - AppleScript tooling (osascript)
  - Growl installation
  - Which notification backend would be selected
  - Login item status

Use --verbose for more detailed output.

Examples:
  # Run diagnostics
  herald doctor

  # Run with verbose output and suggested fixes
  herald doctor --verbose

  # Output as JSON
  herald doctor -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			results := cli.runDiagnostics()

			hasErrors := false
			hasWarnings := false
			for _, r := range results {
				if r.Status == CheckError {
					hasErrors = true
				}
				if r.Status == CheckWarning {
					hasWarnings = true
				}
			}

			output := DoctorOutput{
				Checks:      results,
				HasErrors:   hasErrors,
				HasWarnings: hasWarnings,
			}

			writer := NewOutputWriter(format)
			writeErr := writer.Write(output, func() {
				fmt.Println("Herald Diagnostics")
				fmt.Println("==================")
				fmt.Println()

				for _, r := range results {
					fmt.Printf("%s %s", r.Status.Icon(), r.Name)
					if r.Message != "" {
						fmt.Printf(": %s", r.Message)
					}
					fmt.Println()

					if (r.Status == CheckError || r.Status == CheckWarning) && r.Fix != "" && verbose {
						fmt.Printf("      -> %s\n", r.Fix)
					}
				}

				fmt.Println()
				if hasErrors {
					fmt.Println("Some checks failed. Run with --verbose for suggested fixes.")
				} else if hasWarnings {
					fmt.Println("All critical checks passed with some warnings.")
				} else {
					fmt.Println("All checks passed!")
				}
			})

			if writeErr != nil {
				return writeErr
			}

			if hasErrors {
				return fmt.Errorf("diagnostics failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Show detailed output and suggested fixes")

	return cmd
}

func (cli *CLI) runDiagnostics() []CheckResult {
	var results []CheckResult

	// Check 1: Configuration file
	results = append(results, cli.checkConfigFile())

	// Check 2: Freedesktop notification service
	results = append(results, cli.checkDBusService())

	// Check 3: AppleScript tooling
	results = append(results, cli.checkOsascript())

	// Check 4: Growl installation
	results = append(results, cli.checkGrowl())

	// Check 5: Selected backend
	results = append(results, cli.checkSelectedBackend())

	// Check 6: Login item status
	results = append(results, cli.checkAutostart())

	return results
}

func (cli *CLI) checkConfigFile() CheckResult {
	paths := config.GetPaths()

	if _, err := os.Stat(paths.ConfigFile); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Configuration file",
			Status:  CheckOK,
			Message: "not found (using built-in defaults)",
		}
	}

	// Try to load and validate
	if _, err := config.Load(); err != nil {
		return CheckResult{
			Name:    "Configuration file",
			Status:  CheckError,
			Message: fmt.Sprintf("invalid: %v", err),
			Fix:     "Run 'herald config edit' to fix the configuration",
		}
	}

	return CheckResult{
		Name:    "Configuration file",
		Status:  CheckOK,
		Message: paths.ConfigFile,
	}
}

func (cli *CLI) checkDBusService() CheckResult {
	if runtime.GOOS != "linux" {
		return CheckResult{
			Name:    "Notification service",
			Status:  CheckSkipped,
			Message: "only relevant on Linux",
		}
	}

	if err := notify.CheckDBusService(); err != nil {
		return CheckResult{
			Name:    "Notification service",
			Status:  CheckWarning,
			Message: fmt.Sprintf("unavailable: %v", err),
			Fix:     "Install a notification daemon (dunst, mako, or your desktop's own)",
		}
	}

	return CheckResult{
		Name:    "Notification service",
		Status:  CheckOK,
		Message: "org.freedesktop.Notifications is reachable",
	}
}

func (cli *CLI) checkOsascript() CheckResult {
	if runtime.GOOS != "darwin" {
		return CheckResult{
			Name:    "AppleScript tooling",
			Status:  CheckSkipped,
			Message: "only relevant on macOS",
		}
	}

	path, err := script.NewRunner().LookPath(script.OsascriptBinary)
	if err != nil {
		return CheckResult{
			Name:    "AppleScript tooling",
			Status:  CheckWarning,
			Message: "osascript not found in PATH",
			Fix:     "osascript ships with macOS; check your PATH",
		}
	}

	return CheckResult{
		Name:    "AppleScript tooling",
		Status:  CheckOK,
		Message: path,
	}
}

func (cli *CLI) checkGrowl() CheckResult {
	if runtime.GOOS != "darwin" {
		return CheckResult{
			Name:    "Growl",
			Status:  CheckSkipped,
			Message: "only relevant on macOS",
		}
	}

	switch notify.ProbeGrowl() {
	case notify.ModeGrowlModern:
		return CheckResult{
			Name:    "Growl",
			Status:  CheckOK,
			Message: "Growl 1.3+ installed",
		}
	case notify.ModeGrowlLegacy:
		return CheckResult{
			Name:    "Growl",
			Status:  CheckOK,
			Message: "legacy Growl 1.2 installed",
		}
	default:
		return CheckResult{
			Name:    "Growl",
			Status:  CheckOK,
			Message: "not installed (notification center is used instead)",
		}
	}
}

func (cli *CLI) checkSelectedBackend() CheckResult {
	disabled, err := parseDisabledBackends(cli.Config.DisabledBackends)
	if err != nil {
		return CheckResult{
			Name:    "Notification backend",
			Status:  CheckError,
			Message: err.Error(),
			Fix:     "Fix the disabled_backends list in the configuration",
		}
	}

	n := notify.New(notify.Config{
		AppName:  cli.Config.AppName,
		Disabled: disabled,
	})
	defer n.Close()

	mode := n.Mode()
	if mode == notify.ModeNone {
		return CheckResult{
			Name:    "Notification backend",
			Status:  CheckWarning,
			Message: "none available",
			Fix:     "Critical notifications fall back to a blocking dialog; others are dropped",
		}
	}

	return CheckResult{
		Name:    "Notification backend",
		Status:  CheckOK,
		Message: mode.String(),
	}
}

func (cli *CLI) checkAutostart() CheckResult {
	mgr, err := autostart.NewManager(autostart.Config{})
	if err != nil {
		return CheckResult{
			Name:    "Login item",
			Status:  CheckSkipped,
			Message: err.Error(),
		}
	}

	status, err := mgr.Status()
	if err != nil {
		return CheckResult{
			Name:    "Login item",
			Status:  CheckWarning,
			Message: fmt.Sprintf("status unavailable: %v", err),
		}
	}

	if !status.Installed {
		return CheckResult{
			Name:    "Login item",
			Status:  CheckOK,
			Message: "not installed",
		}
	}

	if status.Running {
		if status.PID > 0 {
			return CheckResult{
				Name:    "Login item",
				Status:  CheckOK,
				Message: fmt.Sprintf("tray running (PID: %d)", status.PID),
			}
		}
		return CheckResult{
			Name:    "Login item",
			Status:  CheckOK,
			Message: "tray running",
		}
	}

	return CheckResult{
		Name:    "Login item",
		Status:  CheckWarning,
		Message: "installed but not running",
		Fix:     "Run 'herald autostart enable' to reinstall and start the tray",
	}
}
