package shell

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mini-sh/minish/core/config"
	"github.com/mini-sh/minish/core/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_builtin(t *testing.T) {
	dir := chdirTemp(t)
	s, stdout, stderr := newTestShell()

	s.Evaluate("pwd")

	assert.Equal(t, dir+"\n", stdout.String())
	assert.Empty(t, stderr.String())
	assert.False(t, s.Quit)
}

func TestEvaluate_exit(t *testing.T) {
	s, _, _ := newTestShell()

	s.Evaluate("exit")

	// The read loop exits with status 0, regardless of other pending state.
	assert.True(t, s.Quit)
}

func TestEvaluate_parseError(t *testing.T) {
	s, _, stderr := newTestShell()

	s.Evaluate("cat " + strings.Repeat("a ", DefaultMaxLineLen))

	assert.Contains(t, stderr.String(), "minish: line too long")
	assert.False(t, s.Quit)
}

func TestEvaluate_launchError(t *testing.T) {
	s, _, stderr := newTestShell()

	s.Evaluate("definitely-not-a-program")

	assert.Contains(t, stderr.String(), "minish: definitely-not-a-program")
	assert.False(t, s.Quit)
}

func TestEvaluate_endToEnd(t *testing.T) {
	dir := chdirTemp(t)
	s, stdout, stderr := newTestShell()
	s.Launcher.Stdin = bytes.NewReader(nil)

	s.Evaluate("echo hello > out.txt")
	s.Evaluate("cat < out.txt | cat >> copy.txt")
	s.Evaluate("cat copy.txt")

	assert.Empty(t, stderr.String())
	assert.Equal(t, "hello\n", stdout.String())

	content, err := ioutil.ReadFile(filepath.Join(dir, "copy.txt"))
	require.Nil(t, err)
	assert.Equal(t, "hello\n", string(content))
}

func TestEvaluate_sessionLog(t *testing.T) {
	chdirTemp(t)

	logBuf := &bytes.Buffer{}
	stdout := &bytes.Buffer{}
	s := New(config.Default(), logger.New(logBuf), stdout, ioutil.Discard)

	s.Evaluate("pwd")
	s.Evaluate("definitely-not-a-program")

	var kinds []logger.EventKind
	require.Nil(t, logger.ReadEvents(logBuf, func(event *logger.Event) {
		kinds = append(kinds, event.Kind)
	}))

	assert.Equal(t, []logger.EventKind{
		logger.KindLine,
		logger.KindBuiltin,
		logger.KindLine,
		logger.KindError,
	}, kinds)
}

func TestPrompt(t *testing.T) {
	dir := chdirTemp(t)

	cfg := config.Default()
	cfg.Color = false
	s := New(cfg, nil, ioutil.Discard, ioutil.Discard)

	assert.Equal(t, dir+" mini-shell> ", s.prompt())
}
