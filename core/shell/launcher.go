package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/mini-sh/minish/core/logger"
)

// Launcher spawns operating system processes for parsed commands. Per line
// it runs in one of two states: a single command, or a two-stage pipeline
// joined by one unidirectional pipe.
//
// Spawned processes are ephemeral: the launcher either blocks until they
// terminate (foreground, statuses discarded) or announces their pids and
// disowns them (background). No job table retains them afterwards.
type Launcher struct {
	// Stdin, Stdout and Stderr are the standard streams handed to spawned
	// processes when no redirection or pipe replaces them. Background
	// announcements go to Stdout.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Log records spawn events; nil disables logging.
	Log *logger.Recorder

	// notifyReaped is called with the pid of each disowned process once its
	// exit status has been collected and discarded. Only set by tests.
	notifyReaped func(pid int)
}

// NewLauncher returns a Launcher wired to the interpreter's own streams.
func NewLauncher(stdout, stderr io.Writer, log *logger.Recorder) *Launcher {
	return &Launcher{
		Stdin:  os.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Log:    log,
	}
}

// Run executes cmd. The returned error covers everything that prevented the
// line from executing; the interpreter reports it and continues. A failure
// of the spawned program itself (including a discarded nonzero exit status)
// is not an error here.
func (l *Launcher) Run(cmd *Command) error {
	switch {
	case len(cmd.Stage1) == 0:
		return nil
	case cmd.HasPipe && len(cmd.Stage2) == 0:
		// The reference behavior spawned a doomed consumer; reject the line
		// up front instead.
		return errors.New("missing command after |")
	case cmd.HasPipe:
		return l.runPipeline(cmd)
	default:
		return l.runSingle(cmd)
	}
}

// runSingle spawns one process for Stage1, resolving the program through the
// search path. Foreground execution blocks until the process terminates;
// background execution announces the pid and returns immediately.
func (l *Launcher) runSingle(cmd *Command) error {
	proc := exec.Command(cmd.Stage1[0], cmd.Stage1[1:]...)
	proc.Stdin = l.Stdin
	proc.Stdout = l.Stdout
	proc.Stderr = l.Stderr

	opened, err := applyRedirection(proc, proc, cmd)
	if err != nil {
		return err
	}

	err = proc.Start()
	closeAll(opened)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Stage1[0], err)
	}

	l.Log.Record(logger.Event{
		Kind:       logger.KindSpawn,
		Argv:       cmd.Stage1,
		Pids:       []int{proc.Process.Pid},
		Background: cmd.Background,
	})

	if cmd.Background {
		fmt.Fprintf(l.Stdout, "[Background pid %d]\n", proc.Process.Pid)
		l.disown(proc)
		return nil
	}

	_ = proc.Wait() // status discarded
	return nil
}

// runPipeline spawns the producer and consumer joined by one pipe. The
// interpreter is never a participant in the data flow: it closes both of its
// pipe ends as soon as both processes have been spawned so the consumer sees
// end-of-data once the producer exits.
//
// Descriptor redirection applies symmetrically: the input target replaces
// the producer's stdin, the output target replaces the consumer's stdout.
func (l *Launcher) runPipeline(cmd *Command) error {
	read, write, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("pipe: %w", err)
	}

	producer := exec.Command(cmd.Stage1[0], cmd.Stage1[1:]...)
	producer.Stdin = l.Stdin
	producer.Stdout = write
	producer.Stderr = l.Stderr

	consumer := exec.Command(cmd.Stage2[0], cmd.Stage2[1:]...)
	consumer.Stdin = read
	consumer.Stdout = l.Stdout
	consumer.Stderr = l.Stderr

	opened, err := applyRedirection(producer, consumer, cmd)
	if err != nil {
		read.Close()
		write.Close()
		return err
	}

	release := func() {
		read.Close()
		write.Close()
		closeAll(opened)
	}

	if err := producer.Start(); err != nil {
		release()
		return fmt.Errorf("%s: %w", cmd.Stage1[0], err)
	}

	consumerErr := consumer.Start()
	release()
	if consumerErr != nil {
		// The producer is already running; collect it so it cannot linger.
		// With the read end closed it terminates on its next write.
		if cmd.Background {
			l.disown(producer)
		} else {
			_ = producer.Wait()
		}
		return fmt.Errorf("%s: %w", cmd.Stage2[0], consumerErr)
	}

	argv := append([]string{}, cmd.Stage1...)
	argv = append(argv, "|")
	argv = append(argv, cmd.Stage2...)
	l.Log.Record(logger.Event{
		Kind:       logger.KindSpawn,
		Argv:       argv,
		Pids:       []int{producer.Process.Pid, consumer.Process.Pid},
		Background: cmd.Background,
	})

	if cmd.Background {
		fmt.Fprintf(l.Stdout, "[Background pids %d, %d]\n",
			producer.Process.Pid, consumer.Process.Pid)
		l.disown(producer)
		l.disown(consumer)
		return nil
	}

	// Both stages, in either order; statuses discarded.
	_ = producer.Wait()
	_ = consumer.Wait()
	return nil
}

// disown hands a background process to the reaper: its exit status is
// collected and discarded so it never lingers as a zombie, and nothing
// retains it afterwards.
func (l *Launcher) disown(proc *exec.Cmd) {
	notify := l.notifyReaped
	go func() {
		_ = proc.Wait()
		if notify != nil {
			notify(proc.Process.Pid)
		}
	}()
}
