package cli

import (
	"fmt"
	"image"
	"os"
	"time"

	// Register decoders for user-supplied icon files.
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"

	"github.com/xabinapal/herald/internal/notify"
)

// sendOutput represents the send command output for JSON.
type sendOutput struct {
	Backend  string `json:"backend"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
}

// newSendCmd creates the send command.
func (cli *CLI) newSendCmd() *cobra.Command {
	var severityFlag string
	var iconFlag string
	var timeoutFlag time.Duration

	cmd := &cobra.Command{
		Use:   "send TITLE [BODY]",
		Short: "Send a desktop notification",
		Long: `Send a desktop notification through the best available backend.

The backend is chosen once, at startup: the macOS notification center,
Growl, the freedesktop notification service, or a system tray balloon.
Delivery is best effort; a notification that cannot be shown is dropped
without an error, except for critical notifications on systems with no
backend at all, which fall back to a blocking dialog.

Examples:
  # Send an informational notification
  herald send "Backup finished" "All volumes are up to date"

  # Send a warning with a custom icon
  herald send -s warning -i /path/to/icon.png "Disk almost full"

  # Send a critical notification that stays for a minute
  herald send -s critical -t 1m "RAID degraded" "Replace disk 2"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			severity, err := notify.ParseSeverity(severityFlag)
			if err != nil {
				return err
			}

			title := args[0]
			body := ""
			if len(args) == 2 {
				body = args[1]
			}

			var icon image.Image
			iconPath := iconFlag
			if iconPath == "" {
				iconPath = cli.Config.Icon
			}
			if iconPath != "" {
				icon, err = loadIcon(iconPath)
				if err != nil {
					return fmt.Errorf("failed to load icon: %w", err)
				}
			}

			disabled, err := parseDisabledBackends(cli.Config.DisabledBackends)
			if err != nil {
				return err
			}

			timeout := timeoutFlag
			if timeout == 0 {
				timeout = cli.Config.Timeout()
			}

			n := notify.New(notify.Config{
				AppName:  cli.Config.AppName,
				Disabled: disabled,
			})
			defer n.Close()

			if cli.verboseFlag {
				fmt.Fprintf(os.Stderr, "using backend: %s\n", n.Mode())
			}

			n.Notify(severity, title, body, icon, timeout)

			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			if format == OutputFormatJSON {
				writer := NewOutputWriter(format)
				return writer.WriteJSON(sendOutput{
					Backend:  n.Mode().String(),
					Severity: severity.String(),
					Title:    title,
				})
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&severityFlag, "severity", "s", "info", "Notification severity (info, warning, critical)")
	cmd.Flags().StringVarP(&iconFlag, "icon", "i", "", "Path to a PNG or JPEG icon file")
	cmd.Flags().DurationVarP(&timeoutFlag, "timeout", "t", 0, "How long the notification stays visible (e.g. 10s)")

	return cmd
}

// loadIcon reads and decodes an icon image file.
func loadIcon(path string) (image.Image, error) {
	// #nosec G304 - path comes from a flag or the user's own config file
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// parseDisabledBackends converts configured backend names to modes.
func parseDisabledBackends(names []string) ([]notify.Mode, error) {
	var modes []notify.Mode
	for _, name := range names {
		m, err := notify.ParseMode(name)
		if err != nil {
			return nil, fmt.Errorf("invalid disabled backend: %w", err)
		}
		modes = append(modes, m)
	}
	return modes, nil
}
