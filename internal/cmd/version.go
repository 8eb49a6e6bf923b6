package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/coffman/internal/version"
)

func newVersionCmd(cc *CommandContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print version information including version number, git commit,
build date, Go version, and platform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()

			if cc.Config.Output.Format != "text" {
				formatter, err := cc.Formatter()
				if err != nil {
					return err
				}
				return formatter.Format(info)
			}

			if verbose {
				fmt.Fprintln(cc.Out, info.String())
				return nil
			}
			fmt.Fprintf(cc.Out, "coffman %s\n", info.Short())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed version information")
	return cmd
}
