package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/example/teamsel/internal/config"
	"github.com/example/teamsel/internal/logging"
	"github.com/example/teamsel/internal/wire"
)

// ConfigureRoot adds the global flags to the root command and installs the
// hook that loads configuration and sets up logging before any subcommand.
func ConfigureRoot(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String("config-dir", "", "Directory containing .teamsel/config.yaml (default: working directory)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flags.String("log-format", "", "Log format: text or json (overrides config)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("config-dir")
		wire.SetConfigDir(dir)

		cfg, err := wire.Config()
		if err != nil {
			return err
		}
		return setupLogging(cmd, cfg.Log, cmd.ErrOrStderr())
	}
}

// setupLogging applies flag overrides on top of the configured log settings.
func setupLogging(cmd *cobra.Command, logCfg config.Log, w io.Writer) error {
	if cmd.Flags().Changed("log-level") {
		logCfg.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-format") {
		logCfg.Format, _ = cmd.Flags().GetString("log-format")
	}

	level, err := logging.ParseLevel(logCfg.Level)
	if err != nil {
		return err
	}
	return logging.Init(level, logCfg.Format, w)
}
