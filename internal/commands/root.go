// Package commands implements readingctl, the offline companion of the reading-stats server. It
// reads the same configuration and log files and prints reports to stdout.
package commands

import (
	"context"
	"fmt"
	"time"

	"reading-stats/internal/app"
	"reading-stats/internal/models"
	"reading-stats/internal/shared/configs"
	"reading-stats/internal/shared/filestorages"
	"reading-stats/internal/shared/loggers"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "./configs/configs.yml"

// Options are the collaborators of the command tree, replaced in tests.
type Options struct {
	LoadConfig  func(path string) (*configs.Config, error)
	FileStorage filestorages.FileStorage
	Now         func() time.Time
}

type rootFlags struct {
	configPath string
	debug      bool
}

// env is what every subcommand needs once the config is loaded.
type env struct {
	config     *configs.Config
	components *app.Components
	ctx        context.Context
	clock      func() time.Time
}

func NewRootCommand(opts Options) *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "readingctl",
		Short: "Kindle reading statistics from the command line",
		Long: `readingctl reads the Kindle reader activity logs and prints reading statistics.

Examples:
  readingctl report                      # Totals, goal progress and the current month
  readingctl report --month 2024-02      # Page to another month without reloading
  readingctl report --day 2024-03-05     # Two-hour slots of one day
  readingctl rotate                      # Compact closed months into the archive
  readingctl size                        # Size of the log directory
  readingctl sync                        # Upload logs to the sync server`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", defaultConfigPath,
		"Path to the configuration file")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false,
		"Enable debug logging")

	setup := func(cmd *cobra.Command) (*env, error) {
		return newEnv(cmd, opts, flags)
	}
	rootCmd.AddCommand(
		newReportCommand(setup),
		newRotateCommand(setup),
		newSizeCommand(setup),
		newShareCommand(setup),
		newSyncCommand(setup),
	)
	return rootCmd
}

// Execute runs readingctl against the host filesystem.
func Execute() error {
	return NewRootCommand(Options{
		LoadConfig:  configs.LoadConfig,
		FileStorage: filestorages.NewOsFileStorage(),
		Now:         time.Now,
	}).Execute()
}

func newEnv(cmd *cobra.Command, opts Options, flags *rootFlags) (*env, error) {
	config, err := opts.LoadConfig(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := config.Log.Level
	if flags.debug {
		logLevel = "debug"
	}
	// stdout carries the report, logs go to stderr
	logger, err := loggers.NewWithWriter(logLevel, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With().Str(loggers.FieldApp, "readingctl").Logger()

	components, err := app.NewComponents(config, opts.FileStorage, opts.Now)
	if err != nil {
		return nil, err
	}
	return &env{
		config:     config,
		components: components,
		ctx:        logger.WithContext(cmd.Context()),
		clock:      opts.Now,
	}, nil
}

type setupFunc func(cmd *cobra.Command) (*env, error)

func (e *env) now() time.Time {
	return e.clock().In(e.components.Location)
}

// load restores the archive into the scratch file, the same way the server starts, then reads every
// source and projects the given month. Call cleanup when done.
func (e *env) load(year, month int) (*models.Stats, error) {
	if _, err := e.components.Session.Rotate(e.ctx); err != nil {
		loggers.Ctx(e.ctx).Warn().Err(err).Msg("log rotation failed, history may be incomplete")
	}
	return e.components.Session.LoadAndProject(e.ctx, year, month, true)
}

func (e *env) cleanup() {
	if err := e.components.LogStore.RemoveScratch(e.ctx); err != nil {
		loggers.Ctx(e.ctx).Warn().Err(err).Msg("failed to remove scratch file")
	}
}
