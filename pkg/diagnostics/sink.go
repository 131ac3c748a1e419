// Package diagnostics provides a minimal structured-logging sink for
// decoder warnings and verbose traces, replacing the print-style
// diagnostics of the reference implementation.
package diagnostics

import (
	"fmt"
	"io"
	"log"
)

// Sink receives diagnostic messages from the decoder and its collaborators.
// Warnf is used for recoverable-error conditions (malformed weights, an
// exhausted search); Infof is used for informational traces (resolved
// weights, per-expansion verbose output).
type Sink interface {
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
}

// StderrSink writes to a stdlib *log.Logger, matching the way the rest of
// this codebase's ancestry reports diagnostics (plain log/fmt, no
// third-party logging dependency appears anywhere in the retrieved pack).
type StderrSink struct {
	logger *log.Logger
}

// NewStderrSink wraps w (typically os.Stderr) in a *log.Logger with no
// timestamp prefix, so warnings read the same way the Python reference's
// `print >> sys.stderr` lines did.
func NewStderrSink(w io.Writer) *StderrSink {
	return &StderrSink{logger: log.New(w, "", 0)}
}

func (s *StderrSink) Warnf(format string, args ...any) {
	s.logger.Printf("warning: "+format, args...)
}

func (s *StderrSink) Infof(format string, args ...any) {
	s.logger.Printf(format, args...)
}

// DiscardSink drops every message; the default when the caller doesn't
// want diagnostics (e.g. non-verbose CLI runs, library embedding).
type DiscardSink struct{}

func (DiscardSink) Warnf(format string, args ...any) {}
func (DiscardSink) Infof(format string, args ...any) {}

// compile-time checks
var (
	_ Sink = (*StderrSink)(nil)
	_ Sink = DiscardSink{}
)

// Sprintf is a small helper so callers building multi-field trace messages
// don't need to import fmt themselves.
func Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
