// Package shell implements the interpreter core: parsing one input line into
// a command, dispatching builtins, and launching operating system processes
// with redirection, a single two-stage pipeline and background execution.
package shell

// Command is the parsed representation of one input line. A fresh Command is
// produced per line and discarded once execution completes; it never carries
// process ids.
type Command struct {
	// Stage1 is the argument vector of the first (or only) command, program
	// name first. Nothing executes while it is empty.
	Stage1 []string
	// Stage2 is the argument vector of the pipeline consumer. It is only
	// populated after a pipe token switched the active stage.
	Stage2 []string

	// HasPipe is true iff a pipe token was encountered.
	HasPipe bool
	// Background is true iff a background token was seen anywhere in the
	// line.
	Background bool

	// InputPath and OutputPath are optional redirection targets.
	InputPath  string
	OutputPath string
	// Append selects append mode for OutputPath instead of truncation.
	Append bool
}
