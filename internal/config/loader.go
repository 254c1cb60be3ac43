package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/altuslabsxyz/generate-version/internal/output"
)

var knownKeys = map[string]bool{
	"ref":         true,
	"repo":        true,
	"git":         true,
	"git_timeout": true,
	"no_color":    true,
	"verbose":     true,
	"stderr":      true,
}

// ConfigLoader loads the optional TOML config file.
type ConfigLoader struct {
	configPath string // Explicit --config path
	logger     output.LoggerInterface
}

// NewConfigLoader creates a new ConfigLoader. An empty configPath means
// no config file is used; the working directory is never searched.
func NewConfigLoader(configPath string, logger output.LoggerInterface) *ConfigLoader {
	return &ConfigLoader{
		configPath: configPath,
		logger:     logger,
	}
}

// LoadFileConfig reads and validates the config file.
// Returns an empty FileConfig when no path was given.
func (l *ConfigLoader) LoadFileConfig() (*FileConfig, error) {
	if l.configPath == "" {
		return &FileConfig{}, nil
	}

	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", l.configPath, err)
	}

	var cfg FileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", l.configPath, err)
	}

	l.warnUnknownKeys(data)

	if err := ValidateFileConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if l.logger != nil {
		l.logger.Debug("Loaded config file: %s", l.configPath)
	}
	return &cfg, nil
}

// warnUnknownKeys checks for unknown keys in the config file and logs warnings.
func (l *ConfigLoader) warnUnknownKeys(data []byte) {
	if l.logger == nil {
		return
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return // Ignore errors here - main parsing will catch them
	}

	var unknown []string
	for key := range raw {
		if !knownKeys[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	for _, key := range unknown {
		l.logger.Warn("Unknown key in config file %s: %s", l.configPath, key)
	}
}
