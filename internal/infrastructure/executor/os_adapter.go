package executor

import (
	"bytes"
	"context"
	"os/exec"
)

// OSCommandExecutor implements CommandExecutor using os/exec.
type OSCommandExecutor struct {
	// Env, when non-nil, replaces the child's environment.
	Env []string
}

// NewOSCommandExecutor creates a new command executor using the real OS exec package.
func NewOSCommandExecutor() *OSCommandExecutor {
	return &OSCommandExecutor{}
}

// Output executes a command using exec.CommandContext.
//
// Stdout and stderr are captured separately so that diagnostics printed by
// the child never leak into the returned value.
func (e *OSCommandExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if e.Env != nil {
		cmd.Env = e.Env
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return nil, &CommandError{
			Name:   name,
			Args:   args,
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}

var _ CommandExecutor = (*OSCommandExecutor)(nil)
