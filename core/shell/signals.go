package shell

import (
	"os"
	"os/signal"
)

// Policy owns the interpreter's process-wide signal dispositions. It is
// installed once at startup and persists for the interpreter's lifetime.
type Policy struct {
	interrupts chan os.Signal
}

// InstallPolicy configures the interpreter's signal dispositions:
//
// Interrupts are caught and discarded, so Ctrl-C only unblocks whatever the
// interpreter is waiting on. During a line read the readline layer turns it
// into an abandoned line; while a foreground child runs the kernel delivers
// the signal to the whole foreground process group, the interpreter survives
// and the child's default disposition terminates it.
//
// The policy installs a handler rather than SIG_IGN: an ignored disposition
// would survive exec and make every spawned program immune to interrupts,
// while a caught handler is reset to the platform default when the child
// replaces its image. That reset is the "restore" step each spawned process
// performs, uniformly for foreground and background execution.
//
// Children are never left as zombies: every spawned process is either waited
// on in the foreground or handed to the disowned-process reaper (see
// Launcher), so no child-exit signal handling is needed.
func InstallPolicy() *Policy {
	p := &Policy{interrupts: make(chan os.Signal, 1)}
	signal.Notify(p.interrupts, os.Interrupt)
	go func() {
		for range p.interrupts {
		}
	}()
	return p
}

// Restore reverts the interrupt disposition to the default. It exists for
// tests; the interpreter itself keeps the policy until it exits.
func (p *Policy) Restore() {
	signal.Stop(p.interrupts)
	close(p.interrupts)
}
