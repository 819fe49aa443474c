package cmd

import (
	"fmt"

	"github.com/mini-sh/minish/core/shell"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the commands the interpreter executes without spawning a
// process.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands executed by the interpreter itself.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range shell.ListBuiltins() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
