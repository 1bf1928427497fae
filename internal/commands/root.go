package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/perch"
	"github.com/simonhull/firebird-suite/perch/pkg/output"
	"github.com/simonhull/firebird-suite/perch/pkg/store"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the perch CLI.
// Running it without a subcommand captures one instruction.
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "perch",
		Short: "Capture one instruction from the console",
		Long: `perch asks for a single instruction, echoes it back and saves it to a
command file for whatever tool picks it up next.

If input cannot be read the file gets "help"; if you interrupt with Ctrl+C
it gets "stop". Either way perch exits successfully.

Example:
  perch
  echo "deploy staging" | perch -o /tmp/cmd.txt`,
		Version:       perch.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
		RunE: runCapture,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().String("config", "", "Config file (default ./perch.yml if present)")
	cmd.PersistentFlags().StringP("output", "o", store.DefaultPath, "File the command is written to")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error, silent")

	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "perch v%s\n", perch.Version)
		},
	}
}
