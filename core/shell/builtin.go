package shell

import (
	"fmt"
	"os"
	"sort"

	"github.com/mini-sh/minish/core/logger"
)

// BuiltinFunc executes a command inside the interpreter itself. It reports
// whether the interpreter should quit afterwards.
type BuiltinFunc func(s *Shell, cmd *Command) (quit bool)

// builtins maps a command name to its in-interpreter implementation.
// Builtins never spawn processes and ignore any redirection targets on the
// descriptor.
var builtins = map[string]BuiltinFunc{
	"cd":   changeDir,
	"go":   changeDir, // historical alias for cd
	"pwd":  printWorkDir,
	"exit": requestQuit,
}

// ListBuiltins returns the names of all builtin commands, sorted.
func ListBuiltins() []string {
	var names []string
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DispatchBuiltin runs cmd in-process when its program is a builtin. It
// reports whether the command was handled and whether the interpreter should
// quit. An empty command is handled with no effect.
func (s *Shell) DispatchBuiltin(cmd *Command) (handled, quit bool) {
	if len(cmd.Stage1) == 0 {
		return true, false
	}

	builtin, ok := builtins[cmd.Stage1[0]]
	if !ok {
		return false, false
	}

	s.log.Record(logger.Event{Kind: logger.KindBuiltin, Argv: cmd.Stage1})
	return true, builtin(s, cmd)
}

// changeDir implements cd and its alias. It requires exactly one directory
// argument; on failure the working directory is left unchanged and the
// interpreter continues.
func changeDir(s *Shell, cmd *Command) bool {
	name := cmd.Stage1[0]
	args := cmd.Stage1[1:]

	switch {
	case len(args) == 0:
		s.reportError(fmt.Errorf("%s: missing argument", name))
	case len(args) > 1:
		s.reportError(fmt.Errorf("%s: expected a single directory", name))
	default:
		if err := os.Chdir(args[0]); err != nil {
			s.reportError(fmt.Errorf("%s: %w", name, err))
		}
	}
	return false
}

// printWorkDir implements pwd.
func printWorkDir(s *Shell, cmd *Command) bool {
	wd, err := os.Getwd()
	if err != nil {
		s.reportError(fmt.Errorf("pwd: %w", err))
		return false
	}

	fmt.Fprintln(s.stdout, wd)
	return false
}

// requestQuit implements exit: the read loop terminates the interpreter with
// status 0, regardless of any other pending state.
func requestQuit(s *Shell, cmd *Command) bool {
	return true
}
