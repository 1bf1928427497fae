package main

import (
	"os"

	"github.com/simonhull/firebird-suite/perch/internal/commands"
	"github.com/simonhull/firebird-suite/perch/pkg/output"
)

func main() {
	rootCmd := commands.RootCmd()

	rootCmd.AddCommand(commands.LoopCmd())
	rootCmd.AddCommand(commands.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
