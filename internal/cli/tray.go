package cli

import (
	"bytes"
	"context"
	"image/png"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/getlantern/systray"
	"github.com/spf13/cobra"

	"github.com/xabinapal/herald/internal/config"
	"github.com/xabinapal/herald/internal/logging"
	"github.com/xabinapal/herald/internal/notify"
)

// newTrayCmd creates the tray command.
func (cli *CLI) newTrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tray",
		Short: "Run the resident notification tray",
		Long: `Run Herald as a resident system tray process.

The tray process keeps a status icon in the system tray and makes the
tray balloon backend available for notifications. It runs until the
Quit menu item is selected or the process receives an interrupt.

Use 'herald autostart enable' to start the tray automatically at login.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(cli.Config.Log.Level)
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Config{
				Level:    level,
				FilePath: cli.Config.Log.File,
				JSONMode: cli.Config.Log.JSON,
				MaxSize:  int64(cli.Config.Log.MaxSize) * 1024 * 1024,
			})
			if err != nil {
				return err
			}
			defer logger.Close()

			return runTray(cmd.Context(), cli.Config, logger)
		},
	}
}

// trayIcon adapts the tray process to the notification facade. Balloon
// messages go out through the OS notification mechanism since the tray
// library itself draws icons and menus only.
type trayIcon struct {
	logger *logging.Logger
}

// SupportsMessages reports that balloon messages can be shown.
func (t *trayIcon) SupportsMessages() bool {
	return true
}

// ShowMessage displays a balloon message anchored at the tray icon.
func (t *trayIcon) ShowMessage(title, body string, icon notify.MessageIcon, timeout time.Duration) {
	if err := beeep.Notify(title, body, ""); err != nil {
		t.logger.Warn("tray message failed", map[string]string{"error": err.Error()})
	}
}

// runTray starts the tray event loop and blocks until it exits.
func runTray(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	disabled, err := parseDisabledBackends(cfg.DisabledBackends)
	if err != nil {
		return err
	}

	tray := &trayIcon{logger: logger}
	n := notify.New(notify.Config{
		AppName:  cfg.AppName,
		Tray:     tray,
		Disabled: disabled,
	})

	logger.Info("tray started", map[string]string{"backend": n.Mode().String()})

	onReady := func() {
		if icon := trayIconBytes(); icon != nil {
			systray.SetIcon(icon)
		}
		systray.SetTitle(cfg.AppName)
		systray.SetTooltip("Herald notifications")

		testItem := systray.AddMenuItem("Send test notification", "Send a test notification")
		systray.AddSeparator()
		quitItem := systray.AddMenuItem("Quit", "Quit Herald")

		go func() {
			for {
				select {
				case <-ctx.Done():
					systray.Quit()
					return
				case <-testItem.ClickedCh:
					logger.Debug("test notification requested")
					n.Notify(notify.SeverityInformation, cfg.AppName, "Test notification", nil, cfg.Timeout())
				case <-quitItem.ClickedCh:
					systray.Quit()
					return
				}
			}
		}()
	}

	onExit := func() {
		if err := n.Close(); err != nil {
			logger.Warn("failed to close notificator", map[string]string{"error": err.Error()})
		}
		logger.Info("tray stopped")
	}

	systray.Run(onReady, onExit)
	return nil
}

// trayIconBytes renders the status icon shown in the tray.
func trayIconBytes() []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, notify.StandardIcon(notify.SeverityInformation)); err != nil {
		return nil
	}
	return buf.Bytes()
}
