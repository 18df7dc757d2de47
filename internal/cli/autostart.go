package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/xabinapal/herald/internal/autostart"
	"github.com/xabinapal/herald/internal/config"
)

// newAutostartCmd creates the autostart command group.
func (cli *CLI) newAutostartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autostart",
		Short: "Manage the tray login item",
		Long: fmt.Sprintf(`Manage the login item that starts 'herald tray' at login.

The login item is managed through %s on this platform.`, autostart.PlatformName()),
	}

	cmd.AddCommand(
		cli.newAutostartEnableCmd(),
		cli.newAutostartDisableCmd(),
		cli.newAutostartStatusCmd(),
	)

	return cmd
}

// autostartManager builds a manager for the current binary.
func autostartManager() (autostart.Manager, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate the herald binary: %w", err)
	}

	paths := config.GetPaths()
	return autostart.NewManager(autostart.Config{
		ExecutablePath: exe,
		LogPath:        filepath.Join(paths.DataDir, "tray.log"),
	})
}

// newAutostartEnableCmd creates the autostart enable command.
func (cli *CLI) newAutostartEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Start the tray at login",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := autostartManager()
			if err != nil {
				return err
			}

			if err := mgr.Install(); err != nil {
				return fmt.Errorf("failed to install login item: %w", err)
			}

			fmt.Printf("Login item installed: %s\n", mgr.EntryFilePath())
			return nil
		},
	}
}

// newAutostartDisableCmd creates the autostart disable command.
func (cli *CLI) newAutostartDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Stop starting the tray at login",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := autostartManager()
			if err != nil {
				return err
			}

			if err := mgr.Uninstall(); err != nil {
				return fmt.Errorf("failed to remove login item: %w", err)
			}

			fmt.Println("Login item removed.")
			return nil
		},
	}
}

// newAutostartStatusCmd creates the autostart status command.
func (cli *CLI) newAutostartStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show login item status",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			mgr, err := autostartManager()
			if err != nil {
				return err
			}

			status, err := mgr.Status()
			if err != nil {
				return fmt.Errorf("failed to query login item status: %w", err)
			}

			writer := NewOutputWriter(format)
			return writer.Write(status, func() {
				if !status.Installed {
					fmt.Println("Login item is not installed.")
					return
				}

				fmt.Printf("Login item: %s\n", mgr.EntryFilePath())
				if status.Running {
					if status.PID > 0 {
						fmt.Printf("Tray is running (PID: %d)\n", status.PID)
					} else {
						fmt.Println("Tray is running")
					}
				} else {
					fmt.Println("Tray is not running")
				}
			})
		},
	}
}
