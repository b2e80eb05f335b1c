// Package app implements the main application commands.
package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pgen-dev/pgen/internal/config"
	"github.com/pgen-dev/pgen/internal/entropy"
	"github.com/pgen-dev/pgen/internal/logger"
	"github.com/pgen-dev/pgen/internal/metrics"
	"github.com/pgen-dev/pgen/internal/output"
)

// dependencies are the side-effecting collaborators of the commands.
type dependencies struct {
	clipboard output.Clipboard
	fs        afero.Fs
	source    entropy.Source
}

// mockClipboardEnv disables the system clipboard, for headless runs.
const mockClipboardEnv = "MOCK_CLIPBOARD"

func defaultDependencies() dependencies {
	deps := dependencies{
		clipboard: output.SystemClipboard{},
		fs:        afero.NewOsFs(),
		source:    entropy.OS(),
	}

	if _, ok := os.LookupEnv(mockClipboardEnv); ok {
		deps.clipboard = output.DiscardClipboard{}
	}

	return deps
}

// state is shared by the root command and its subcommands during one execution.
type state struct {
	deps       dependencies
	configPath string
	logLevel   string
	cfg        config.Config
	metrics    *metrics.Collector
}

func newRootCmd(deps dependencies) *cobra.Command {
	s := &state{deps: deps}

	rootCmd := &cobra.Command{
		Use:   "pgen",
		Short: "pgen generates passwords from a configurable character set",
		Long: `pgen generates passwords from letters, digits and symbols, or from an
explicit character set. Every password is drawn with an unbiased sampler
from a stream seeded by the operating system's secure random facility.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return s.load(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.generate(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.configPath, "config", "", "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")

	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(newHistoryCmd(s), newConfigCmd(s))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd(defaultDependencies()).Execute()
}

// load reads the configuration, applies explicitly set flags and initialises logging.
func (s *state) load(cmd *cobra.Command) error {
	cfg, err := config.ReadConfig(s.configPath)
	if err != nil {
		return err
	}

	applyFlags(cmd, &cfg)

	if s.logLevel != "" {
		cfg.Log.LogLevel = s.logLevel
	}

	if err = config.Validate(&cfg); err != nil {
		return err
	}

	s.cfg = cfg
	s.metrics = metrics.New()

	if err = logger.Init(cfg.Log, s.metrics.Registry()); err != nil {
		return err
	}

	log.Debug().Str("command", cmd.Name()).Str("config", s.configPath).Msg("configuration loaded")

	return nil
}
