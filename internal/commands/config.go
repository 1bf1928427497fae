package commands

import (
	"fmt"
	"os"

	"github.com/simonhull/firebird-suite/perch/pkg/config"
	"github.com/simonhull/firebird-suite/perch/pkg/input"
	"github.com/spf13/cobra"
)

// ConfigCmd creates the 'config' command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage perch configuration",
	}

	cmd.AddCommand(configInitCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default perch.yml",
		Long: `Writes a config file with the default settings.

Example:
  perch config init
  perch config init ./deploy/perch.yml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			path := config.DefaultFile
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !force {
				ctx, stop := interruptContext(cmd)
				defer stop()

				r := input.New(cmd.InOrStdin(), cmd.OutOrStdout())
				if !input.Confirm(ctx, r, fmt.Sprintf("%s exists. Overwrite?", path), false) {
					s.printer.Info("Kept existing " + path)
					return nil
				}
			}

			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			s.printer.Success("Wrote " + path)
			s.printer.Info("Next steps:")
			s.printer.Step("edit output to change where commands are saved")
			s.printer.Step("perch loop")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite without asking")

	return cmd
}
