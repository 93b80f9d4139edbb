package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/schotanus/goutil/pkg/config"
	"github.com/schotanus/goutil/pkg/logger"
)

// loggingConfig is read from the environment, optionally via a .env
// file in the working directory.
type loggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

var log *slog.Logger

var rootCmd = &cobra.Command{
	Use:   "goutil",
	Short: "Utility toolbox: Roman numbers and an RPN calculator",
	Long: `goutil bundles small command line utilities.

Commands:
  roman  - convert between Arabic and Roman numbers
  rpn    - evaluate reverse Polish notation expressions`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var cfg loggingConfig
		if err := config.Load(&cfg); err != nil {
			return err
		}
		format := logger.FormatText
		if cfg.Format == string(logger.FormatJSON) {
			format = logger.FormatJSON
		}
		log = logger.New(
			logger.WithLevel(logger.ParseLevel(cfg.Level)),
			logger.WithFormat(format),
			logger.WithOutput(cmd.ErrOrStderr()),
		)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}
