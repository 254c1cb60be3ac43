package main

import (
	"errors"
	"fmt"

	"github.com/altuslabsxyz/generate-version/internal/output"
)

const usageLine = "Usage: generate_version <version.json> <output_header>"

// UsageError reports a malformed command line.
type UsageError struct {
	Args int   // positional arguments received
	Err  error // flag parsing failure, if any
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("expected 2 arguments, got %d", e.Args)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// handleCommandError prints err once and returns the exit code.
// Cobra's own error and usage printing is silenced on the root command.
func handleCommandError(logger output.LoggerInterface, err error) int {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		if usageErr.Err != nil {
			logger.Error("%v", usageErr.Err)
		}
		fmt.Fprintln(logger.Writer(), usageLine)
		return 1
	}

	logger.Error("%v", err)
	return 1
}
