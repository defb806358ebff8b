// Package logging holds the leveled loggers shared by the lzwpack
// packages and the CLI. Trace carries per-pass diagnostics and is
// discarded unless verbose mode is on; Info carries progress lines and
// is silenced by quiet mode; Error always writes to stderr.
package logging

import (
	"io"
	"log"
	"os"
)

var (
	Trace = log.New(io.Discard, "trace: ", 0)
	Info  = log.New(os.Stdout, "", 0)
	Error = log.New(os.Stderr, "error: ", 0)
)

// SetVerbose routes trace output to stderr, or discards it again.
// Trace output never affects encoded bytes.
func SetVerbose(on bool) {
	if on {
		Trace.SetOutput(os.Stderr)
	} else {
		Trace.SetOutput(io.Discard)
	}
}

// SetQuiet drops the progress lines written through Info.
func SetQuiet(on bool) {
	if on {
		Info.SetOutput(io.Discard)
	} else {
		Info.SetOutput(os.Stdout)
	}
}
