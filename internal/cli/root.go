// Package cli provides the command-line interface for Herald.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xabinapal/herald/internal/config"
)

// CLI holds the application state for the CLI.
type CLI struct {
	Config  *config.Config
	rootCmd *cobra.Command

	// Flags
	verboseFlag bool
	outputFlag  string
}

// New creates a new CLI instance.
func New() *CLI {
	cli := &CLI{}

	cli.rootCmd = &cobra.Command{
		Use:   "herald [command]",
		Short: "Herald - desktop notification dispatcher",
		Long: `Herald sends desktop notifications through whichever backend the
current desktop session provides, without callers having to know which
one that is.

Herald probes the available backends once and commits to the best one:
the macOS notification center, a Growl installation, the freedesktop
notification service on the session bus, or a system tray balloon.
When nothing is available, critical notifications fall back to a
blocking dialog and everything else is dropped silently.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	// Global flags
	cli.rootCmd.PersistentFlags().BoolVarP(&cli.verboseFlag, "verbose", "v", false, "Enable verbose output")
	cli.rootCmd.PersistentFlags().StringVarP(&cli.outputFlag, "output", "o", "text", "Output format (text, json)")

	// Add commands
	cli.addCommands()

	return cli
}

// addCommands adds all subcommands to the root command.
func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		cli.newVersionCmd(),
		cli.newSendCmd(),
		cli.newTrayCmd(),
		cli.newConfigCmd(),
		cli.newDoctorCmd(),
		cli.newAutostartCmd(),
		cli.newCompletionCmd(),
	)
}

// initialize loads configuration and sets up the CLI.
func (cli *CLI) initialize(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		// Doctor and config commands must run even with a broken
		// configuration so they can report it.
		if isDiagnosticCommand(cmd) {
			cli.Config = config.Default()
			return nil
		}
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cli.Config = cfg
	return nil
}

func isDiagnosticCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "doctor" || c.Name() == "config" {
			return true
		}
	}
	return false
}

// Execute runs the CLI.
func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}
