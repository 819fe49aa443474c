// Package logger is a standardized event logging framework for the
// interpreter. Events are newline delimited JSON so logs can be tailed and
// filtered with standard tools.
package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// EventKind labels what a log entry describes.
type EventKind string

const (
	// KindLine is a raw input line accepted for evaluation.
	KindLine EventKind = "line"
	// KindBuiltin is a command handled by the interpreter itself.
	KindBuiltin EventKind = "builtin"
	// KindSpawn is one or two operating system processes being started.
	KindSpawn EventKind = "spawn"
	// KindError is a reported error; the interpreter always continues.
	KindError EventKind = "error"
)

// Event is one session log entry.
type Event struct {
	Time       time.Time `json:"time"`
	Kind       EventKind `json:"kind"`
	Line       string    `json:"line,omitempty"`
	Argv       []string  `json:"argv,omitempty"`
	Pids       []int     `json:"pids,omitempty"`
	Background bool      `json:"background,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Recorder appends events to a session log. A nil Recorder discards
// everything, so callers never need to guard their Record calls.
type Recorder struct {
	mu  sync.Mutex
	out io.Writer
	now func() time.Time
}

// New creates a Recorder writing to out.
func New(out io.Writer) *Recorder {
	return &Recorder{out: out, now: time.Now}
}

// Open creates a Recorder appending to the log file at path, plus a cleanup
// function. An empty path yields a nil Recorder and logging is disabled.
func Open(path string) (*Recorder, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	fd, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}
	return New(fd), func() { fd.Close() }, nil
}

// Record writes one event, stamping it with the current time.
func (r *Recorder) Record(event Event) error {
	if r == nil {
		return nil
	}

	event.Time = r.now()

	serialized, err := json.Marshal(&event)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.out.Write(serialized); err != nil {
		return err
	}
	_, err = r.out.Write([]byte("\n"))
	return err
}

// ReadEvents parses a newline delimited JSON session log.
func ReadEvents(r io.Reader, handler func(event *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			return err
		}
		handler(&event)
	}
	return nil
}
