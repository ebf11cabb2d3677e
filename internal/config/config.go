// Package config handles global ssot configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the global ssot configuration.
type Config struct {
	// MemoryDir is where generated memories land when the output filename
	// is given without a directory (defaults to the current directory).
	MemoryDir string `toml:"memory_dir"`

	// Defaults override the built-in template placeholder values
	// (e.g. scope = "analytics-platform"). CLI key=value args still win.
	Defaults map[string]string `toml:"defaults"`
}

// Load loads the configuration from the default location.
// Returns an empty config if the file doesn't exist.
func Load() (*Config, error) {
	path := DefaultPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/ssot/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "ssot", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "ssot", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	path := DefaultPath()

	if _, err := os.Stat(path); err == nil {
		return path, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	sample := `# ssot configuration

# Directory for generated memories when the output filename has no directory.
# memory_dir = "/path/to/memories"

# Template placeholder defaults. CLI key=value arguments still override these.
# [defaults]
# scope = "analytics-platform"
# domain = "analytics"
`

	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
