package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate validates the EffectiveConfig values.
func (c *EffectiveConfig) Validate() error {
	if strings.TrimSpace(c.Ref.Value) == "" {
		return fmt.Errorf("invalid ref: must not be empty (from %s)", c.Ref.Source)
	}
	if strings.HasPrefix(c.Ref.Value, "-") {
		return fmt.Errorf("invalid ref: %s (must not start with '-')", c.Ref.Value)
	}
	if strings.TrimSpace(c.Git.Value) == "" {
		return fmt.Errorf("invalid git: must not be empty (from %s)", c.Git.Source)
	}
	if c.GitTimeout.Value < 0 {
		return fmt.Errorf("invalid git timeout: %s (must not be negative)", c.GitTimeout.Value)
	}
	return nil
}

// ValidateFileConfig validates the FileConfig values before merging.
func ValidateFileConfig(cfg *FileConfig) error {
	if cfg == nil {
		return nil
	}

	if cfg.GitTimeout != nil {
		d, err := time.ParseDuration(*cfg.GitTimeout)
		if err != nil {
			return fmt.Errorf("invalid git_timeout in config file: %s (must be a duration such as '30s')", *cfg.GitTimeout)
		}
		if d < 0 {
			return fmt.Errorf("invalid git_timeout in config file: %s (must not be negative)", *cfg.GitTimeout)
		}
	}

	if cfg.Ref != nil && strings.TrimSpace(*cfg.Ref) == "" {
		return fmt.Errorf("invalid ref in config file: must not be empty")
	}

	if cfg.Git != nil && strings.TrimSpace(*cfg.Git) == "" {
		return fmt.Errorf("invalid git in config file: must not be empty")
	}

	return nil
}
