package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hugr-lab/soma-go/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	var compact, majorMinor bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print library and engine versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

			if !compact {
				if formatter.Format == "json" {
					return formatter.json(map[string]string{
						"module": version.Module(),
						"engine": version.Engine,
					})
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.AsString())
				return err
			}

			v, err := version.Compact(majorMinor)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid engine version", err)
			}
			if formatter.Format == "json" {
				return formatter.json(map[string]string{"engine": v})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false, "print only the engine version")
	cmd.Flags().BoolVar(&majorMinor, "major-minor", false, "with --compact, omit the patch number")
	return cmd
}
