package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the coffman command tree. Each call returns fresh
// flag state.
func NewRootCommand() *cobra.Command {
	cc := &CommandContext{}

	rootCmd := &cobra.Command{
		Use:   "coffman",
		Short: "Coffman–Graham priority lists for task graphs",
		Long: `coffman ranks the tasks of a dependency graph with the Coffman–Graham
algorithm. Scheduling the two highest-ranked ready tasks at every step on two
identical processors then gives a schedule of minimum length.

Graphs are read from YAML, JSON or HCL files:

  name: diamond
  tasks: [1, 2, 3, 4]
  successors:
    1: [2, 3]
    2: [4]
    3: [4]`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cc.load(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is ./.coffman.yaml or $HOME/.coffman/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.StringP("format", "f", "", "output format: text, json or yaml")
	flags.Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newRankCmd(cc),
		newValidateCmd(cc),
		newInspectCmd(cc),
		newHistoryCmd(cc),
		newConfigCmd(cc),
		newVersionCmd(cc),
	)

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx, which is cancelled on
// interrupt by main.
func ExecuteContext(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}
