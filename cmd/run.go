package cmd

import (
	"os"

	"github.com/mini-sh/minish/core/logger"
	"github.com/mini-sh/minish/core/shell"
	"github.com/spf13/cobra"
)

var commandLine string

// runCmd starts the interpreter's read/eval loop.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive interpreter.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		recorder, closeLog, err := logger.Open(configuration.SessionLog)
		if err != nil {
			return err
		}
		defer closeLog()

		policy := shell.InstallPolicy()
		defer policy.Restore()

		s := shell.New(configuration, recorder, os.Stdout, os.Stderr)

		if commandLine != "" {
			s.Evaluate(commandLine)
			return nil
		}

		if status := s.RunInteractive(); status != 0 {
			closeLog()
			os.Exit(status)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&commandLine, "command", "c", "", "evaluate a single line and exit")
	rootCmd.AddCommand(runCmd)
}
