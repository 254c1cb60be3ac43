package executor

import (
	"context"
	"fmt"
	"strings"
)

// CommandExecutor abstracts command execution for testing.
//
// Only what the version query needs is exposed: standard output on success,
// and a *CommandError carrying standard error on failure.
//
// Callers are responsible for sanitizing arguments.
type CommandExecutor interface {
	// Output runs name with args and returns its raw standard output.
	//
	// The command is killed when ctx is cancelled or its deadline passes.
	// A command that cannot be started, exits non-zero, or is killed
	// returns a *CommandError wrapping the underlying cause.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// CommandError describes a failed command invocation.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
