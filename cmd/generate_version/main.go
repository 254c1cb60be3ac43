package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/altuslabsxyz/generate-version/internal/infrastructure/executor"
	"github.com/altuslabsxyz/generate-version/internal/output"
	"github.com/altuslabsxyz/generate-version/internal/vcs"
)

// app holds the collaborators a run needs.
type app struct {
	logger      *output.Logger
	fs          afero.Fs
	newResolver func(opts vcs.GitOptions) vcs.ReferenceDateResolver
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		logger: output.NewLoggerWithWriters(stdout, stderr),
		fs:     afero.NewOsFs(),
		newResolver: func(opts vcs.GitOptions) vcs.ReferenceDateResolver {
			return vcs.NewGitResolver(executor.NewOSCommandExecutor(), opts)
		},
	}
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], newApp(os.Stdout, os.Stderr)))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, a *app) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(a.logger.Writer())
	cmd.SetErr(a.logger.ErrWriter())

	if err := cmd.ExecuteContext(ctx); err != nil {
		return handleCommandError(a.logger, err)
	}
	return 0
}
