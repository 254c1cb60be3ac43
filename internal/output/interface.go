package output

import "io"

// LoggerInterface defines the logging interface for services.
// This allows for dependency injection and easier testing.
type LoggerInterface interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
	Debug(format string, args ...interface{})
	Success(format string, args ...interface{})

	SetVerbose(verbose bool)
	SetNoColor(noColor bool)
	SetStderr(enabled bool)
	IsVerbose() bool

	Writer() io.Writer
	ErrWriter() io.Writer
}

// Verify that Logger implements LoggerInterface at compile time.
var _ LoggerInterface = (*Logger)(nil)
