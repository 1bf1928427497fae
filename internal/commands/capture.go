package commands

import (
	"github.com/simonhull/firebird-suite/perch/pkg/capture"
	"github.com/simonhull/firebird-suite/perch/pkg/input"
	"github.com/simonhull/firebird-suite/perch/pkg/logger"
	"github.com/simonhull/firebird-suite/perch/pkg/store"
	"github.com/spf13/cobra"
)

func runCapture(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	ctx, stop := interruptContext(cmd)
	defer stop()

	s.printer.Verbose("Writing command to " + s.cfg.Output)

	c := &capture.Capture{
		Reader:  input.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Printer: s.printer,
		Sink:    store.New(s.cfg.Output),
		Logger:  s.log.WithFields(logger.F("output", s.cfg.Output)),
	}

	_, err = c.Run(ctx)
	return err
}
