package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/coffman/internal/config"
	"github.com/felixgeelhaar/coffman/internal/errors"
)

func newConfigCmd(cc *CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or initialise coffman configuration",
		Long: `Manage coffman configuration.

Configuration is read from --config, else ./.coffman.yaml (searched up to
the git root), else ~/.coffman/config.yaml. COFFMAN_* environment variables
override file values, e.g. COFFMAN_OUTPUT_FORMAT=json.`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "view",
			Short: "Display the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if cc.Config.Output.Format == "text" {
					data, err := yaml.Marshal(cc.Config)
					if err != nil {
						return err
					}
					_, err = cc.Out.Write(data)
					return err
				}
				formatter, err := cc.Formatter()
				if err != nil {
					return err
				}
				return formatter.Format(cc.Config)
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Show the configuration file in use",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := configPath(cc)
				if err != nil {
					return err
				}
				fmt.Fprintln(cc.Out, path)
				return nil
			},
		},
		newConfigInitCmd(cc),
	)
	return cmd
}

func newConfigInitCmd(cc *CommandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(cc)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("config file already exists: %s", path)).
					WithSuggestion("Use --force to overwrite it")
			}

			if err := config.Save(config.Default(), path); err != nil {
				return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write %s", path), err)
			}
			fmt.Fprintf(cc.Out, "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func configPath(cc *CommandContext) (string, error) {
	if cc.ConfigPath != "" {
		return cc.ConfigPath, nil
	}
	return config.DefaultPath()
}
