package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslabsxyz/generate-version/internal/output"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "generate_version.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestNewEffectiveConfig_Defaults(t *testing.T) {
	cfg := NewEffectiveConfig()

	assert.Equal(t, "master", cfg.Ref.Value)
	assert.Equal(t, "git", cfg.Git.Value)
	assert.Empty(t, cfg.Repo.Value)
	assert.Zero(t, cfg.GitTimeout.Value)
	assert.False(t, cfg.Stderr.Value)
	assert.Equal(t, SourceDefault, cfg.Ref.Source)
	assert.NoError(t, cfg.Validate())
}

func TestConfigLoader_NoPath(t *testing.T) {
	fileCfg, err := NewConfigLoader("", nil).LoadFileConfig()
	require.NoError(t, err)
	assert.True(t, fileCfg.IsEmpty())
}

func TestConfigLoader_Load(t *testing.T) {
	path := writeConfig(t, `
ref = "develop"
repo = "/src/spresense"
git_timeout = "30s"
stderr = true
`)
	var out bytes.Buffer
	logger := output.NewLoggerWithWriters(&out, &out)

	fileCfg, err := NewConfigLoader(path, logger).LoadFileConfig()
	require.NoError(t, err)
	require.NotNil(t, fileCfg.Ref)
	assert.Equal(t, "develop", *fileCfg.Ref)
	assert.Nil(t, fileCfg.Verbose)
	assert.Empty(t, out.String())

	cfg := NewEffectiveConfig()
	require.NoError(t, cfg.ApplyFile(fileCfg, path))

	assert.Equal(t, StringValue{Value: "develop", Source: SourceConfigFile}, cfg.Ref)
	assert.Equal(t, "/src/spresense", cfg.Repo.Value)
	assert.Equal(t, 30*time.Second, cfg.GitTimeout.Value)
	assert.True(t, cfg.Stderr.Value)
	assert.Equal(t, SourceDefault, cfg.Git.Source)
	assert.Equal(t, path, cfg.ConfigFilePath)
}

func TestConfigLoader_UnknownKeys(t *testing.T) {
	path := writeConfig(t, `
ref = "master"
colour = true
`)
	var out bytes.Buffer
	logger := output.NewLoggerWithWriters(&out, &out)

	_, err := NewConfigLoader(path, logger).LoadFileConfig()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Warning: Unknown key in config file")
	assert.Contains(t, out.String(), "colour")
}

func TestConfigLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") },
			wantErr: "failed to read config file",
		},
		{
			name:    "invalid toml",
			path:    func(t *testing.T) string { return writeConfig(t, `ref = `) },
			wantErr: "failed to parse config file",
		},
		{
			name:    "bad duration",
			path:    func(t *testing.T) string { return writeConfig(t, `git_timeout = "soon"`) },
			wantErr: "invalid git_timeout",
		},
		{
			name:    "negative duration",
			path:    func(t *testing.T) string { return writeConfig(t, `git_timeout = "-1s"`) },
			wantErr: "must not be negative",
		},
		{
			name:    "empty ref",
			path:    func(t *testing.T) string { return writeConfig(t, `ref = " "`) },
			wantErr: "invalid ref",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfigLoader(tt.path(t), nil).LoadFileConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEffectiveConfig_FlagsOverrideFile(t *testing.T) {
	ref := "develop"
	timeout := "1m"
	verbose := true
	fileCfg := &FileConfig{Ref: &ref, GitTimeout: &timeout, Verbose: &verbose}

	cfg := NewEffectiveConfig()
	require.NoError(t, cfg.ApplyFile(fileCfg, "cfg.toml"))
	require.NoError(t, cfg.ApplyFlags(newFlagSet(t, "--ref", "release", "--git-timeout", "5s", "--repo", "../sdk")))

	assert.Equal(t, StringValue{Value: "release", Source: SourceFlag}, cfg.Ref)
	assert.Equal(t, DurationValue{Value: 5 * time.Second, Source: SourceFlag}, cfg.GitTimeout)
	assert.Equal(t, StringValue{Value: "../sdk", Source: SourceFlag}, cfg.Repo)
	assert.Equal(t, BoolValue{Value: true, Source: SourceConfigFile}, cfg.Verbose)

	opts := cfg.GitOptions()
	assert.Equal(t, "git", opts.Binary)
	assert.Equal(t, "../sdk", opts.RepoDir)
	assert.Equal(t, 5*time.Second, opts.Timeout)
}

func TestEffectiveConfig_UnchangedFlagsKeepFileValues(t *testing.T) {
	stderr := true
	cfg := NewEffectiveConfig()
	require.NoError(t, cfg.ApplyFile(&FileConfig{Stderr: &stderr}, "cfg.toml"))
	require.NoError(t, cfg.ApplyFlags(newFlagSet(t)))

	assert.Equal(t, BoolValue{Value: true, Source: SourceConfigFile}, cfg.Stderr)
	assert.Equal(t, SourceDefault, cfg.Ref.Source)
}

func TestEffectiveConfig_Validate(t *testing.T) {
	cfg := NewEffectiveConfig()
	cfg.Ref = StringValue{Value: "--all", Source: SourceFlag}
	assert.ErrorContains(t, cfg.Validate(), "must not start with '-'")

	cfg = NewEffectiveConfig()
	cfg.Ref = StringValue{Value: "", Source: SourceFlag}
	assert.ErrorContains(t, cfg.Validate(), "invalid ref")

	cfg = NewEffectiveConfig()
	cfg.GitTimeout = DurationValue{Value: -time.Second, Source: SourceFlag}
	assert.ErrorContains(t, cfg.Validate(), "invalid git timeout")
}

func TestEffectiveConfig_ToTable(t *testing.T) {
	var buf bytes.Buffer
	NewEffectiveConfig().ToTable(&buf)

	table := buf.String()
	assert.Contains(t, table, "KEY")
	assert.Contains(t, table, "(current directory)")
	assert.Contains(t, table, "none")
	assert.Contains(t, table, "default")
}
