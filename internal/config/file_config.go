package config

// FileConfig represents the raw TOML config file contents.
// All fields are pointers to distinguish "not set" from "set to zero/false".
type FileConfig struct {
	// Version query settings
	Ref        *string `toml:"ref"`         // Reference whose tip commit date is used
	Repo       *string `toml:"repo"`        // Repository directory (git -C)
	Git        *string `toml:"git"`         // git executable
	GitTimeout *string `toml:"git_timeout"` // Go duration, "0" disables the timeout

	// Output settings
	NoColor *bool `toml:"no_color"`
	Verbose *bool `toml:"verbose"`
	Stderr  *bool `toml:"stderr"`
}

// IsEmpty returns true if no configuration values are set.
func (f *FileConfig) IsEmpty() bool {
	return f.Ref == nil &&
		f.Repo == nil &&
		f.Git == nil &&
		f.GitTimeout == nil &&
		f.NoColor == nil &&
		f.Verbose == nil &&
		f.Stderr == nil
}
