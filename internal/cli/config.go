package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/xabinapal/herald/internal/config"
)

// configPathOutput represents config path output for JSON.
type configPathOutput struct {
	ConfigFile   string `json:"config_file"`
	ConfigDir    string `json:"config_dir"`
	DataDir      string `json:"data_dir"`
	ConfigExists bool   `json:"config_exists"`
}

// validationResult represents validation output for JSON.
type validationResult struct {
	Valid            bool     `json:"valid"`
	AppName          string   `json:"app_name"`
	DefaultTimeoutMS int      `json:"default_timeout_ms"`
	DisabledBackends []string `json:"disabled_backends,omitempty"`
	Errors           []string `json:"errors,omitempty"`
}

// newConfigCmd creates the config command group.
func (cli *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage Herald configuration",
		Long: `Manage Herald configuration files and settings.

Use 'herald config init' to write a default configuration file.
Use 'herald config path' to see configuration file locations.
Use 'herald config edit' to open the configuration in your editor.`,
	}

	cmd.AddCommand(
		cli.newConfigInitCmd(),
		cli.newConfigPathCmd(),
		cli.newConfigEditCmd(),
		cli.newConfigValidateCmd(),
	)

	return cmd
}

// newConfigInitCmd creates the config init command.
func (cli *CLI) newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with the default settings.

Herald works without a configuration file; this command is for people
who want a file to edit.

Examples:
  # Write the default configuration
  herald config init

  # Overwrite an existing configuration
  herald config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := config.GetPaths()

			if _, err := os.Stat(paths.ConfigFile); err == nil && !force {
				return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", paths.ConfigFile)
			}

			cfg := config.Default()
			if err := cfg.Save(); err != nil {
				return fmt.Errorf("failed to write configuration: %w", err)
			}

			fmt.Printf("Wrote %s\n", paths.ConfigFile)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}

// newConfigPathCmd creates the config path command.
func (cli *CLI) newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			paths := config.GetPaths()

			_, configErr := os.Stat(paths.ConfigFile)
			output := configPathOutput{
				ConfigFile:   paths.ConfigFile,
				ConfigDir:    paths.ConfigDir,
				DataDir:      paths.DataDir,
				ConfigExists: configErr == nil,
			}

			writer := NewOutputWriter(format)
			return writer.Write(output, func() {
				fmt.Println("Configuration paths:")
				fmt.Printf("  Config file:  %s\n", paths.ConfigFile)
				fmt.Printf("  Config dir:   %s\n", paths.ConfigDir)
				fmt.Printf("  Data dir:     %s\n", paths.DataDir)

				fmt.Println("\nStatus:")
				if output.ConfigExists {
					fmt.Printf("  Config file exists\n")
				} else {
					fmt.Printf("  Config file does not exist\n")
				}
			})
		},
	}
}

// newConfigEditCmd creates the config edit command.
func (cli *CLI) newConfigEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open configuration file in editor",
		RunE: func(cmd *cobra.Command, args []string) error {
			editor := os.Getenv("EDITOR")
			if editor == "" {
				editor = os.Getenv("VISUAL")
			}
			if editor == "" {
				// Try common editors
				for _, e := range []string{"vim", "vi", "nano", "notepad"} {
					if _, err := exec.LookPath(e); err == nil {
						editor = e
						break
					}
				}
			}
			if editor == "" {
				return fmt.Errorf("no editor found: set $EDITOR environment variable")
			}

			configPath := cli.Config.FilePath()

			// Ensure config file exists
			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				// Create default config
				if err := cli.Config.Save(); err != nil {
					return fmt.Errorf("failed to create config file: %w", err)
				}
			}

			// #nosec G204 - editor is from $EDITOR env var (user-controlled but expected), configPath is from config file path (controlled)
			editorCmd := exec.Command(editor, configPath)
			editorCmd.Stdin = os.Stdin
			editorCmd.Stdout = os.Stdout
			editorCmd.Stderr = os.Stderr

			return editorCmd.Run()
		},
	}
}

// newConfigValidateCmd creates the config validate command.
func (cli *CLI) newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			result := validationResult{Valid: true}

			cfg, err := config.Load()
			if err != nil {
				result.Valid = false
				result.Errors = append(result.Errors, err.Error())
			} else {
				result.AppName = cfg.AppName
				result.DefaultTimeoutMS = cfg.DefaultTimeoutMS
				result.DisabledBackends = cfg.DisabledBackends

				if _, err := parseDisabledBackends(cfg.DisabledBackends); err != nil {
					result.Valid = false
					result.Errors = append(result.Errors, err.Error())
				}
			}

			writer := NewOutputWriter(format)
			writeErr := writer.Write(result, func() {
				if result.Valid {
					fmt.Println("Configuration is valid.")
					fmt.Printf("  App name:         %s\n", result.AppName)
					fmt.Printf("  Default timeout:  %dms\n", result.DefaultTimeoutMS)
					if len(result.DisabledBackends) > 0 {
						fmt.Printf("  Disabled:         %v\n", result.DisabledBackends)
					}
				} else {
					fmt.Println("Configuration is invalid:")
					for _, e := range result.Errors {
						fmt.Printf("  - %s\n", e)
					}
				}
			})
			if writeErr != nil {
				return writeErr
			}

			if !result.Valid {
				return fmt.Errorf("configuration validation failed")
			}
			return nil
		},
	}
}
