package config

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/altuslabsxyz/generate-version/internal/vcs"
)

// Flag names shared by the command line and the config file.
const (
	FlagRef        = "ref"
	FlagRepo       = "repo"
	FlagGit        = "git"
	FlagGitTimeout = "git-timeout"
	FlagNoColor    = "no-color"
	FlagVerbose    = "verbose"
	FlagStderr     = "stderr"
	FlagConfig     = "config"
)

// EffectiveConfig represents the final merged configuration after applying
// the priority chain: default < config file < flag.
type EffectiveConfig struct {
	Ref        StringValue
	Repo       StringValue
	Git        StringValue
	GitTimeout DurationValue

	NoColor BoolValue
	Verbose BoolValue
	Stderr  BoolValue

	// Metadata
	ConfigFilePath string // Path to loaded config file (empty if none)
}

// NewEffectiveConfig creates a new EffectiveConfig with default values.
func NewEffectiveConfig() *EffectiveConfig {
	return &EffectiveConfig{
		Ref:        NewStringValue(vcs.DefaultRef),
		Repo:       NewStringValue(""),
		Git:        NewStringValue(vcs.DefaultBinary),
		GitTimeout: NewDurationValue(0),
		NoColor:    NewBoolValue(false),
		Verbose:    NewBoolValue(false),
		Stderr:     NewBoolValue(false),
	}
}

// RegisterFlags defines the configuration flags on fs with their defaults.
func RegisterFlags(fs *pflag.FlagSet) {
	defaults := NewEffectiveConfig()

	fs.String(FlagRef, defaults.Ref.Value, "Reference whose tip commit date becomes SPRESENSE_VERSION")
	fs.String(FlagRepo, defaults.Repo.Value, "Repository directory (default: current directory)")
	fs.String(FlagGit, defaults.Git.Value, "git executable")
	fs.Duration(FlagGitTimeout, defaults.GitTimeout.Value, "Timeout for the git query (0 disables it)")
	fs.Bool(FlagNoColor, defaults.NoColor.Value, "Disable colored output")
	fs.BoolP(FlagVerbose, "v", defaults.Verbose.Value, "Enable verbose logging")
	fs.Bool(FlagStderr, defaults.Stderr.Value, "Write warnings and errors to stderr instead of stdout")
	fs.String(FlagConfig, "", "Path to a TOML config file")
}

// ApplyFile applies values set in the config file.
func (c *EffectiveConfig) ApplyFile(f *FileConfig, path string) error {
	if f == nil || f.IsEmpty() {
		return nil
	}
	c.ConfigFilePath = path

	if f.Ref != nil {
		c.Ref = StringValue{Value: *f.Ref, Source: SourceConfigFile}
	}
	if f.Repo != nil {
		c.Repo = StringValue{Value: *f.Repo, Source: SourceConfigFile}
	}
	if f.Git != nil {
		c.Git = StringValue{Value: *f.Git, Source: SourceConfigFile}
	}
	if f.GitTimeout != nil {
		d, err := time.ParseDuration(*f.GitTimeout)
		if err != nil {
			return fmt.Errorf("invalid git_timeout in config file: %w", err)
		}
		c.GitTimeout = DurationValue{Value: d, Source: SourceConfigFile}
	}
	if f.NoColor != nil {
		c.NoColor = BoolValue{Value: *f.NoColor, Source: SourceConfigFile}
	}
	if f.Verbose != nil {
		c.Verbose = BoolValue{Value: *f.Verbose, Source: SourceConfigFile}
	}
	if f.Stderr != nil {
		c.Stderr = BoolValue{Value: *f.Stderr, Source: SourceConfigFile}
	}
	return nil
}

// ApplyFlags applies flags that were explicitly set on the command line.
func (c *EffectiveConfig) ApplyFlags(fs *pflag.FlagSet) error {
	var err error
	applyString := func(name string, dst *StringValue) {
		if err != nil || !fs.Changed(name) {
			return
		}
		var v string
		if v, err = fs.GetString(name); err == nil {
			*dst = StringValue{Value: v, Source: SourceFlag}
		}
	}
	applyBool := func(name string, dst *BoolValue) {
		if err != nil || !fs.Changed(name) {
			return
		}
		var v bool
		if v, err = fs.GetBool(name); err == nil {
			*dst = BoolValue{Value: v, Source: SourceFlag}
		}
	}

	applyString(FlagRef, &c.Ref)
	applyString(FlagRepo, &c.Repo)
	applyString(FlagGit, &c.Git)
	applyBool(FlagNoColor, &c.NoColor)
	applyBool(FlagVerbose, &c.Verbose)
	applyBool(FlagStderr, &c.Stderr)

	if err == nil && fs.Changed(FlagGitTimeout) {
		var d time.Duration
		if d, err = fs.GetDuration(FlagGitTimeout); err == nil {
			c.GitTimeout = DurationValue{Value: d, Source: SourceFlag}
		}
	}

	if err != nil {
		return fmt.Errorf("failed to read flags: %w", err)
	}
	return nil
}

// GitOptions returns the git resolver settings.
func (c *EffectiveConfig) GitOptions() vcs.GitOptions {
	return vcs.GitOptions{
		Binary:  c.Git.Value,
		RepoDir: c.Repo.Value,
		Timeout: c.GitTimeout.Value,
	}
}

// ToTable writes the configuration as a formatted table.
func (c *EffectiveConfig) ToTable(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
	fmt.Fprintf(tw, "ref\t%s\t%s\n", c.Ref.Value, c.Ref.Source)
	fmt.Fprintf(tw, "repo\t%s\t%s\n", displayOrDefault(c.Repo.Value, "(current directory)"), c.Repo.Source)
	fmt.Fprintf(tw, "git\t%s\t%s\n", c.Git.Value, c.Git.Source)
	fmt.Fprintf(tw, "git_timeout\t%s\t%s\n", displayTimeout(c.GitTimeout.Value), c.GitTimeout.Source)
	fmt.Fprintf(tw, "no_color\t%t\t%s\n", c.NoColor.Value, c.NoColor.Source)
	fmt.Fprintf(tw, "verbose\t%t\t%s\n", c.Verbose.Value, c.Verbose.Source)
	fmt.Fprintf(tw, "stderr\t%t\t%s\n", c.Stderr.Value, c.Stderr.Source)
	tw.Flush()
}

func displayOrDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func displayTimeout(d time.Duration) string {
	if d == 0 {
		return "none"
	}
	return d.String()
}
