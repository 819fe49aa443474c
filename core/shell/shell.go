package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"
	"github.com/mini-sh/minish/core/config"
	"github.com/mini-sh/minish/core/logger"
)

var promptColor = color.New(color.FgBlue, color.Bold)

// Shell is the interpreter: it evaluates one raw line at a time, either
// in-process (builtins) or through the Launcher.
type Shell struct {
	Parser   *Parser
	Launcher *Launcher

	marker   string
	colorize bool

	stdout io.Writer
	stderr io.Writer
	log    *logger.Recorder

	// Set to true to quit the interpreter.
	Quit bool
}

// New builds a Shell from the configuration. The recorder may be nil to
// disable session logging.
func New(cfg *config.Configuration, rec *logger.Recorder, stdout, stderr io.Writer) *Shell {
	return &Shell{
		Parser: &Parser{
			MaxArgs:    cfg.MaxArgs,
			MaxLineLen: cfg.MaxLineLen,
		},
		Launcher: NewLauncher(stdout, stderr, rec),
		marker:   cfg.Prompt,
		colorize: cfg.Color,
		stdout:   stdout,
		stderr:   stderr,
		log:      rec,
	}
}

// prompt is the working directory followed by the fixed marker.
func (s *Shell) prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		return s.marker
	}
	if s.colorize {
		wd = promptColor.Sprint(wd)
	}
	return wd + " " + s.marker
}

// RunInteractive reads lines until end-of-input or an exit request and
// returns the interpreter's exit status. An interrupt while reading abandons
// the current line and redisplays the prompt.
func (s *Shell) RunInteractive() int {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: s.stdout,
		Stderr: s.stderr,
	})
	if err != nil {
		fmt.Fprintf(s.stderr, "minish: %v\n", err)
		return 1
	}
	defer rl.Close()

	for !s.Quit {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			// End-of-input terminates the interpreter gracefully.
			fmt.Fprintln(s.stdout)
			return 0

		case err == readline.ErrInterrupt:
			// Interrupt abandons the line.
			continue

		case err != nil:
			log.Printf("Error readline: %v", err)
			continue

		case len(strings.TrimSpace(line)) == 0:
			continue

		default:
			s.Evaluate(line)
		}
	}
	return 0
}

// Evaluate parses and executes one raw input line. Every failure is reported
// here and the interpreter continues; only a builtin exit request (observable
// via Quit) ends the session.
func (s *Shell) Evaluate(line string) {
	s.log.Record(logger.Event{Kind: logger.KindLine, Line: line})

	cmd, err := s.Parser.Parse(line)
	if err != nil {
		s.reportError(err)
		return
	}

	if handled, quit := s.DispatchBuiltin(cmd); handled {
		if quit {
			s.Quit = true
		}
		return
	}

	if err := s.Launcher.Run(cmd); err != nil {
		s.reportError(err)
	}
}

func (s *Shell) reportError(err error) {
	s.log.Record(logger.Event{Kind: logger.KindError, Error: err.Error()})
	fmt.Fprintf(s.stderr, "minish: %v\n", err)
}
