package logging

import (
	"fmt"
	"io"
	"time"
)

// Logger writes progress lines to Writer and per-file failures to ErrWriter.
// Verbose output goes to Writer and is dropped unless Verbose is set.
type Logger struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Verbose   bool
}

func New(writer, errWriter io.Writer, verbose bool) Logger {
	return Logger{Writer: writer, ErrWriter: errWriter, Verbose: verbose}
}

func (l Logger) Infof(format string, args ...any) {
	if l.Writer == nil {
		return
	}
	fmt.Fprintf(l.Writer, format+"\n", args...)
}

func (l Logger) Errorf(format string, args ...any) {
	if l.ErrWriter == nil {
		return
	}
	fmt.Fprintf(l.ErrWriter, format+"\n", args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose {
		return
	}
	l.Infof("Verbose: "+format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
