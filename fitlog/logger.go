// Package fitlog is the logging sink the codec calls for non-fatal
// conditions (an unknown base type, an unresolved field number). It is
// deliberately a two-method interface: the codec is a library first, and
// libraries shouldn't force a logging framework on their callers.
package fitlog

import "log"

// Logger receives warnings (recoverable, decoding continues) and debug
// traces (verbose, off by default) from the decoder and encoder.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

// stdLogger adapts the standard library's log package, using the plain
// log.Printf idiom.
type stdLogger struct {
	debug bool
}

// NewStdLogger returns a Logger backed by log.Default(). When debug is
// false, Debugf is a no-op.
func NewStdLogger(debug bool) Logger {
	return &stdLogger{debug: debug}
}

func (l *stdLogger) Warnf(format string, args ...any) {
	log.Printf("warn: "+format, args...)
}

func (l *stdLogger) Debugf(format string, args ...any) {
	if !l.debug {
		return
	}
	log.Printf("debug: "+format, args...)
}

// discard silently drops everything. Used as the zero-value default so
// callers who don't care about warnings don't have to pass a logger.
type discard struct{}

func (discard) Warnf(string, ...any)  {}
func (discard) Debugf(string, ...any) {}

// Discard is a Logger that drops all messages.
var Discard Logger = discard{}
