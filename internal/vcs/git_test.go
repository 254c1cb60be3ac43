package vcs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/generate-version/internal/infrastructure/executor"
)

type fakeExecutor struct {
	out         string
	err         error
	name        string
	args        []string
	hasDeadline bool
}

func (f *fakeExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.name = name
	f.args = args
	_, f.hasDeadline = ctx.Deadline()
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.out), nil
}

func TestGitResolver_ResolveReferenceDate(t *testing.T) {
	fake := &fakeExecutor{out: "2024-05-01\n"}
	resolver := NewGitResolver(fake, GitOptions{})

	date, err := resolver.ResolveReferenceDate(context.Background(), DefaultRef)
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", date)
	assert.Equal(t, "git", fake.name)
	assert.Equal(t, []string{"log", "-1", "--format=%cd", "--date=format:%Y-%m-%d", "master"}, fake.args)
	assert.False(t, fake.hasDeadline)
}

func TestGitResolver_ForwardsRepoRefAndBinary(t *testing.T) {
	fake := &fakeExecutor{out: "  2023-12-31  "}
	resolver := NewGitResolver(fake, GitOptions{
		Binary:  "/usr/local/bin/git",
		RepoDir: "/src/spresense",
		Timeout: time.Second,
	})

	date, err := resolver.ResolveReferenceDate(context.Background(), "release/v3")
	require.NoError(t, err)

	assert.Equal(t, "2023-12-31", date)
	assert.Equal(t, "/usr/local/bin/git", fake.name)
	assert.Equal(t, []string{
		"-C", "/src/spresense",
		"log", "-1", "--format=%cd", "--date=format:%Y-%m-%d", "release/v3",
	}, fake.args)
	assert.True(t, fake.hasDeadline)
}

func TestGitResolver_Failures(t *testing.T) {
	cause := &executor.CommandError{
		Name:   "git",
		Stderr: "fatal: not a git repository",
		Err:    errors.New("exit status 128"),
	}

	tests := []struct {
		name    string
		fake    *fakeExecutor
		wantIs  error
		wantMsg string
	}{
		{
			name:    "command error",
			fake:    &fakeExecutor{err: cause},
			wantIs:  cause,
			wantMsg: "not a git repository",
		},
		{
			name:    "empty output",
			fake:    &fakeExecutor{out: "\n"},
			wantIs:  ErrEmptyOutput,
			wantMsg: "no commit date",
		},
		{
			name:    "timeout",
			fake:    &fakeExecutor{err: context.DeadlineExceeded},
			wantIs:  context.DeadlineExceeded,
			wantMsg: "deadline exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewGitResolver(tt.fake, GitOptions{})

			date, err := resolver.ResolveReferenceDate(context.Background(), DefaultRef)
			require.Error(t, err)
			assert.Empty(t, date)
			assert.ErrorIs(t, err, tt.wantIs)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), `"master"`)
		})
	}
}
