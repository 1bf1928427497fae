package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/simonhull/firebird-suite/perch/pkg/config"
	"github.com/simonhull/firebird-suite/perch/pkg/logger"
	"github.com/simonhull/firebird-suite/perch/pkg/output"
	"github.com/spf13/cobra"
)

// session bundles what every command needs after flags are parsed.
type session struct {
	cfg     *config.Config
	log     logger.Logger
	printer *output.Printer
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	cfg, err := config.Load(configPath, flags)
	if err != nil {
		return nil, err
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log_level: %w", err)
	}
	verbose, _ := flags.GetBool("verbose")
	if verbose {
		level = logger.LevelDebug
	}

	log := logger.NewLogger(level, cmd.ErrOrStderr())
	logger.SetDefault(log)

	printer := output.NewPrinter(cmd.OutOrStdout())
	printer.SetVerbose(verbose)

	return &session{cfg: cfg, log: log, printer: printer}, nil
}

// interruptContext turns SIGINT into cancellation of the returned context.
// After stop is called a second Ctrl+C kills the process as usual.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt)
}
