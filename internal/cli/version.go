package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xabinapal/herald/internal/version"
)

// newVersionCmd creates the version command.
func (cli *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Herald version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			info := version.Get()

			writer := NewOutputWriter(format)
			return writer.Write(info, func() {
				fmt.Println(info.String())
			})
		},
	}
}
