// Command tally drives the reducekit reference stores from the command
// line: the tally counter, its narrated scenarios, the division form, the
// book catalog and JSON exports.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/felixgeelhaar/reducekit/internal/config"
	"github.com/felixgeelhaar/reducekit/internal/logging"
)

// app carries the state shared by every subcommand once the root command
// has loaded the configuration.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tally",
		Short: "Drive reducekit stores from the command line",
		Long: `tally exercises single-store state containers built with reducekit.

Every command creates a fresh store, dispatches actions to it and prints
what its subscribers observe.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFile, "path to the TOML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		a.scenariosCmd(),
		a.countCmd(),
		a.divideCmd(),
		a.booksCmd(),
		a.exportCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger. Development mode
// uses zap's development config; otherwise logs go to the command's error
// stream in console form.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	var logger *zap.Logger
	if cfg.Log.Development {
		logger, err = logging.New(cfg.Log, a.verbose)
	} else {
		logger, err = logging.NewWriter(cmd.ErrOrStderr(), cfg.Log, a.verbose)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}
