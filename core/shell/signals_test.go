package shell

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicy_interruptDoesNotKillInterpreter(t *testing.T) {
	policy := InstallPolicy()
	defer policy.Restore()

	// With the policy installed an interrupt is caught and discarded; the
	// test process surviving past the next line is the assertion.
	require.Nil(t, syscall.Kill(os.Getpid(), syscall.SIGINT))
	time.Sleep(50 * time.Millisecond)
}

func TestPolicy_childRestoresDefaultDisposition(t *testing.T) {
	policy := InstallPolicy()
	defer policy.Restore()

	l, _, _ := newTestLauncher()

	// The child interrupts itself. Its disposition was restored to the
	// platform default across exec, so the signal terminates it long before
	// the sleep runs out; were the interpreter's disposition inherited it
	// would survive until the test times out.
	start := time.Now()
	err := l.Run(&Command{Stage1: []string{"sh", "-c", "kill -INT $$; sleep 30"}})

	require.Nil(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
