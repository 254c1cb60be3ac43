package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Logger provides colored output functions for CLI feedback.
//
// Informational messages always go to out. Warnings, errors and debug
// output go to out as well unless stderr routing is enabled.
type Logger struct {
	out     io.Writer
	errOut  io.Writer
	diag    io.Writer
	noColor bool
	verbose bool
}

// NewLoggerWithWriters creates a Logger bound to the given writers.
// Diagnostics start on out.
func NewLoggerWithWriters(out, errOut io.Writer) *Logger {
	return &Logger{
		out:    out,
		errOut: errOut,
		diag:   out,
	}
}

// SetNoColor disables colored output. Color is never enabled on a writer
// that is not a terminal.
func (l *Logger) SetNoColor(noColor bool) {
	l.noColor = noColor
}

// SetVerbose enables verbose logging.
func (l *Logger) SetVerbose(verbose bool) {
	l.verbose = verbose
}

// SetStderr routes warnings and errors to the error writer.
func (l *Logger) SetStderr(enabled bool) {
	if enabled {
		l.diag = l.errOut
	} else {
		l.diag = l.out
	}
}

// IsVerbose reports whether debug output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose
}

// Writer returns the informational writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

// ErrWriter returns the writer warnings and errors are sent to.
func (l *Logger) ErrWriter() io.Writer {
	return l.diag
}

// Info prints an informational message in default color.
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Fprintf(l.out, format+"\n", args...)
}

// Warn prints a warning message in yellow.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.colored(l.diag, color.FgYellow).Fprintf(l.diag, "Warning: "+format+"\n", args...)
}

// Error prints an error message in red.
func (l *Logger) Error(format string, args ...interface{}) {
	l.colored(l.diag, color.FgRed).Fprintf(l.diag, "Error: "+format+"\n", args...)
}

// Success prints a success message in green.
func (l *Logger) Success(format string, args ...interface{}) {
	l.colored(l.out, color.FgGreen).Fprintf(l.out, format+"\n", args...)
}

// Debug prints a debug message if verbose mode is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.colored(l.diag, color.FgHiBlack).Fprintf(l.diag, "[DEBUG] "+format+"\n", args...)
}

func (l *Logger) colored(w io.Writer, attr color.Attribute) *color.Color {
	c := color.New(attr)
	if l.noColor || !isTerminal(w) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
