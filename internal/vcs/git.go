// Package vcs resolves revision metadata from a version-control system.
package vcs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/altuslabsxyz/generate-version/internal/infrastructure/executor"
)

// DefaultRef is the reference whose tip commit dates the firmware.
const DefaultRef = "master"

// DefaultBinary is the git executable looked up on PATH.
const DefaultBinary = "git"

// ErrEmptyOutput is returned when git succeeds but prints no date.
var ErrEmptyOutput = errors.New("git returned no commit date")

// ReferenceDateResolver returns the commit date of the tip of ref.
type ReferenceDateResolver interface {
	ResolveReferenceDate(ctx context.Context, ref string) (string, error)
}

// GitOptions configures a GitResolver.
type GitOptions struct {
	// Binary is the git executable. Defaults to DefaultBinary.
	Binary string
	// RepoDir is passed as "git -C". Empty means the working directory.
	RepoDir string
	// Timeout bounds the query. Zero means no timeout.
	Timeout time.Duration
}

// GitResolver resolves reference dates by running git log.
type GitResolver struct {
	exec executor.CommandExecutor
	opts GitOptions
}

// NewGitResolver creates a resolver that runs git through exec.
func NewGitResolver(exec executor.CommandExecutor, opts GitOptions) *GitResolver {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	return &GitResolver{exec: exec, opts: opts}
}

// Args returns the git arguments used to query the date of ref.
func (g *GitResolver) Args(ref string) []string {
	var args []string
	if g.opts.RepoDir != "" {
		args = append(args, "-C", g.opts.RepoDir)
	}
	return append(args, "log", "-1", "--format=%cd", "--date=format:%Y-%m-%d", ref)
}

// ResolveReferenceDate runs git log for ref and returns the trimmed date.
func (g *GitResolver) ResolveReferenceDate(ctx context.Context, ref string) (string, error) {
	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	out, err := g.exec.Output(ctx, g.opts.Binary, g.Args(ref)...)
	if err != nil {
		return "", fmt.Errorf("failed to read commit date of %q: %w", ref, err)
	}

	date := strings.TrimSpace(string(out))
	if date == "" {
		return "", fmt.Errorf("failed to read commit date of %q: %w", ref, ErrEmptyOutput)
	}
	return date, nil
}

var _ ReferenceDateResolver = (*GitResolver)(nil)
