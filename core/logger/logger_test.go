package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedTime() time.Time {
	// Go's reference timestamp with a different value in each position.
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestRecorder(t *testing.T) {
	buf := &bytes.Buffer{}
	recorder := New(buf)
	recorder.now = fixedTime

	require.Nil(t, recorder.Record(Event{Kind: KindLine, Line: "ls -l | wc -l"}))
	require.Nil(t, recorder.Record(Event{
		Kind:       KindSpawn,
		Argv:       []string{"sleep", "30"},
		Pids:       []int{4242},
		Background: true,
	}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)

	var got []*Event
	require.Nil(t, ReadEvents(buf, func(event *Event) {
		got = append(got, event)
	}))

	require.Len(t, got, 2)
	assert.Equal(t, KindLine, got[0].Kind)
	assert.Equal(t, "ls -l | wc -l", got[0].Line)
	assert.Equal(t, fixedTime(), got[0].Time.UTC())
	assert.Equal(t, []int{4242}, got[1].Pids)
	assert.True(t, got[1].Background)
}

func TestRecorder_nil(t *testing.T) {
	// A nil recorder silently discards events.
	var recorder *Recorder
	assert.Nil(t, recorder.Record(Event{Kind: KindError, Error: "ignored"}))
}

func TestReadEvents_malformed(t *testing.T) {
	err := ReadEvents(strings.NewReader(`{"kind":"line"`), func(*Event) {})
	assert.NotNil(t, err)
}

func TestOpen_disabled(t *testing.T) {
	recorder, cleanup, err := Open("")
	assert.Nil(t, err)
	assert.Nil(t, recorder)
	cleanup()
}
