// Package trace provides the structured logging and stage-timing the CLI
// and pipeline audit trail use. The resolver pipeline (package resolve)
// accepts a Logger as an explicit parameter; diff3 and marker take none.
// This package has no globals, and a nil Logger is always a silent no-op.
package trace

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger is the structured logger the CLI constructs once per command
// run and threads through to the pipeline. A nil Logger disables all tracing.
type Logger = *logrus.Logger

// New returns a text-formatted logrus Logger at the given level name
// ("debug", "info", "warn", "error"); an unrecognized level falls back
// to info.
func New(level string) Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

// Logf emits a debug-level message. No-op when log is nil.
func Logf(log Logger, format string, args ...any) {
	if log == nil {
		return
	}
	log.Debugf(format, args...)
}

// Errorf logs an error-level message and returns it as a plain error,
// the caller's one line to both report and propagate a failure.
func Errorf(log Logger, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if log != nil {
		log.Error(msg)
	}
	return fmt.Errorf("%s", msg)
}

// Tracker measures one pipeline stage's elapsed time and reports it
// through Logf when Done is called. Constructing it with Start(nil, …)
// is free: no clock is read when there is no logger to report to.
type Tracker struct {
	log   Logger
	name  string
	start time.Time
}

// Start begins timing a named stage.
func Start(log Logger, name string) *Tracker {
	if log == nil {
		return &Tracker{}
	}
	return &Tracker{log: log, name: name, start: time.Now()}
}

// Done reports the elapsed time since Start, if a logger was supplied.
func (t *Tracker) Done() {
	if t.log == nil {
		return
	}
	t.log.Debugf("stage %s took %v", t.name, time.Since(t.start))
}
