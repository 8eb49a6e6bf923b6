package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/coffman/internal/config"
	"github.com/felixgeelhaar/coffman/internal/errors"
	"github.com/felixgeelhaar/coffman/internal/log"
	"github.com/felixgeelhaar/coffman/internal/ux"
)

// CommandContext holds what every command needs once flags and
// configuration are resolved.
type CommandContext struct {
	Config     *config.Config
	ConfigPath string
	Logger     *log.Logger
	Out        io.Writer
	Err        io.Writer
}

// load resolves configuration (file, environment, then flags) and builds
// the logger.
func (cc *CommandContext) load(cmd *cobra.Command) error {
	cc.Out = cmd.OutOrStdout()
	cc.Err = cmd.ErrOrStderr()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, ok := config.Discover(wd); ok {
				path = found
			}
		}
	}
	cc.ConfigPath = path

	cfg, err := config.Load(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to load configuration", err).
			WithSuggestion("Check the config file or run 'coffman config init' to write a fresh one")
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{"log-level", &cfg.Log.Level},
		{"log-format", &cfg.Log.Format},
		{"format", &cfg.Output.Format},
	}
	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}
		value, err := cmd.Flags().GetString(o.flag)
		if err != nil {
			return err
		}
		*o.target = value
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Output.Color = false
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Output.Color = false
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "invalid configuration", err)
	}

	cc.Config = cfg
	cc.Logger = log.FromStrings(cfg.Log.Level, cfg.Log.Format, cc.Err).With("command", cmd.Name())
	log.SetDefaultLogger(cc.Logger)

	cc.Logger.Debug("configuration loaded", "config_file", path, "output_format", cfg.Output.Format)
	return nil
}

// Formatter returns the output formatter selected by configuration.
func (cc *CommandContext) Formatter() (ux.Formatter, error) {
	return ux.NewFormatter(cc.Config.Output.Format, &ux.FormatterOptions{
		Writer:  cc.Out,
		NoColor: !cc.Config.Output.Color,
	})
}

// Styles returns the text styles selected by configuration.
func (cc *CommandContext) Styles() ux.Styles {
	return ux.StylesFor(!cc.Config.Output.Color)
}

// writeFile renders data to path, choosing the format by extension. Paths
// without a .json/.yaml/.yml extension get uncolored text.
func writeFile(path string, data interface{}) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to create %s", path), err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write %s", path), cerr)
		}
	}()

	formatter, err := ux.NewFormatter(formatForPath(path), &ux.FormatterOptions{Writer: f, NoColor: true})
	if err != nil {
		return err
	}
	if err := formatter.Format(data); err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, fmt.Sprintf("failed to render %s", path), err)
	}
	return nil
}
