package domain

import "log"

// Logger is the minimal logging surface the core needs to report skipped
// records without binding to an output.
type Logger interface {
	Debug(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// StdLogger adapts the standard library logger to the Logger interface.
type StdLogger struct{}

func (StdLogger) Debug(format string, args ...any) { log.Printf("DEBUG "+format, args...) }
func (StdLogger) Warn(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (StdLogger) Error(format string, args ...any) { log.Printf("ERROR "+format, args...) }

// NopLogger discards everything. Used in tests.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
