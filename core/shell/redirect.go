package shell

import (
	"fmt"
	"os"
	"os/exec"
)

// Mode for files created by output redirection: owner read/write, group and
// other read-only.
const redirectionMode = 0644

// applyRedirection opens cmd's redirection targets and attaches them to the
// processes about to be spawned: the input target replaces stdinProc's
// standard input, the output target replaces stdoutProc's standard output.
// For a single command both are the same process; for a pipeline the caller
// passes the producer and consumer respectively.
//
// The opened files are returned so the caller can release them once the
// spawn calls have completed; the children keep their own duplicated
// descriptors. If any open fails, nothing stays open and the error aborts
// the line without anything having been spawned.
func applyRedirection(stdinProc, stdoutProc *exec.Cmd, cmd *Command) ([]*os.File, error) {
	var opened []*os.File

	if cmd.InputPath != "" {
		fd, err := os.Open(cmd.InputPath)
		if err != nil {
			return nil, fmt.Errorf("input open: %w", err)
		}
		stdinProc.Stdin = fd
		opened = append(opened, fd)
	}

	if cmd.OutputPath != "" {
		fd, err := openOutput(cmd.OutputPath, cmd.Append)
		if err != nil {
			closeAll(opened)
			return nil, fmt.Errorf("output open: %w", err)
		}
		stdoutProc.Stdout = fd
		opened = append(opened, fd)
	}

	return opened, nil
}

// openOutput opens path for writing, creating it if absent. Append preserves
// existing content, otherwise the file is truncated.
func openOutput(path string, appendMode bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, redirectionMode)
}

func closeAll(files []*os.File) {
	for _, fd := range files {
		fd.Close()
	}
}
