package commands

import (
	"github.com/simonhull/firebird-suite/perch/pkg/input"
	"github.com/simonhull/firebird-suite/perch/pkg/logger"
	"github.com/simonhull/firebird-suite/perch/pkg/loop"
	"github.com/simonhull/firebird-suite/perch/pkg/store"
	"github.com/spf13/cobra"
)

// LoopCmd creates the 'loop' command, which keeps prompting until stop.
func LoopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loop",
		Short: "Run the interactive task loop",
		Long: `Keeps asking for commands until you type "stop".

Every command is saved to the command file as it is entered. Built-in
commands:
• help    list commands
• status  show project status and the previous command
• dev     developer mode

Ctrl+C saves "stop", end of input saves "help".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			ctx, stop := interruptContext(cmd)
			defer stop()

			r, closeReader, err := input.NewLoopReader(cmd.InOrStdin(), cmd.OutOrStdout(), s.cfg.HistoryFile)
			if err != nil {
				return err
			}
			defer closeReader()

			l := &loop.Loop{
				Reader:   r,
				Printer:  s.printer,
				Registry: loop.DefaultRegistry(),
				Store:    store.New(s.cfg.Output),
				Project:  s.cfg.Project,
				Logger:   s.log.WithFields(logger.F("output", s.cfg.Output)),
			}
			return l.Run(ctx)
		},
	}

	cmd.Flags().String("history", "", "Line editor history file")

	return cmd
}
