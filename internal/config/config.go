package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// DefaultMaxFileSize is the largest page the tool will parse
const DefaultMaxFileSize = 4 << 20

// Config represents the vimwiki tool configuration
type Config struct {
	WikiDirs        []string      `json:"wiki_dirs"`
	Extension       string        `json:"extension"`
	LogFile         string        `json:"log_file"`
	MaxFileSize     int64         `json:"max_file_size"`
	Workers         int           `json:"workers"`
	Debounce        time.Duration `json:"-"` // Custom JSON handling below
	ExcludePatterns []string      `json:"exclude_patterns,omitempty"`
}

// rawConfig is the on-disk form, with the debounce written as a string
type rawConfig struct {
	WikiDirs        []string `json:"wiki_dirs"`
	Extension       string   `json:"extension"`
	LogFile         string   `json:"log_file"`
	MaxFileSize     int64    `json:"max_file_size,omitempty"`
	Workers         int      `json:"workers,omitempty"`
	Debounce        string   `json:"debounce,omitempty"`
	ExcludePatterns []string `json:"exclude_patterns,omitempty"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		WikiDirs:        []string{filepath.Join(home, "vimwiki")},
		Extension:       ".wiki",
		LogFile:         filepath.Join(os.TempDir(), "vimwiki.log"),
		MaxFileSize:     DefaultMaxFileSize,
		Workers:         4,
		Debounce:        250 * time.Millisecond,
		ExcludePatterns: []string{}, // No exclusions by default
	}
}

// ConfigPath returns the path to the config file
// Uses ~/.config on all platforms for consistency
// Can be overridden for testing
var ConfigPath = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to XDG if home dir unavailable
		return filepath.Join(xdg.ConfigHome, "vimwiki", "config.json")
	}
	return filepath.Join(home, ".config", "vimwiki", "config.json")
}

// StateFilePath returns the path to the state file
// Uses platform-specific XDG data directory
// Can be overridden for testing
var StateFilePath = func() string {
	return filepath.Join(xdg.DataHome, "vimwiki", "state.json")
}

// Load reads configuration from the config directory
func Load() (*Config, error) {
	configPath := ConfigPath()
	data, err := os.ReadFile(configPath)
	if err != nil {
		// Return default config if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var raw rawConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultConfig()
	cfg := &Config{
		WikiDirs:        raw.WikiDirs,
		Extension:       raw.Extension,
		LogFile:         raw.LogFile,
		MaxFileSize:     raw.MaxFileSize,
		Workers:         raw.Workers,
		Debounce:        defaults.Debounce,
		ExcludePatterns: raw.ExcludePatterns,
	}

	if raw.Debounce != "" {
		debounce, err := time.ParseDuration(raw.Debounce)
		if err != nil {
			return nil, fmt.Errorf("invalid debounce format '%s': %w", raw.Debounce, err)
		}
		cfg.Debounce = debounce
	}
	if cfg.Extension == "" {
		cfg.Extension = defaults.Extension
	}
	if cfg.MaxFileSize == 0 {
		cfg.MaxFileSize = defaults.MaxFileSize
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaults.Workers
	}
	// Set empty slice for exclude patterns if nil
	if cfg.ExcludePatterns == nil {
		cfg.ExcludePatterns = []string{}
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Expand paths
	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to the config directory
func (c *Config) Save() error {
	configPath := ConfigPath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw := rawConfig{
		WikiDirs:        c.WikiDirs,
		Extension:       c.Extension,
		LogFile:         c.LogFile,
		MaxFileSize:     c.MaxFileSize,
		Workers:         c.Workers,
		Debounce:        c.Debounce.String(),
		ExcludePatterns: c.ExcludePatterns,
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if len(c.WikiDirs) == 0 {
		return fmt.Errorf("wiki_dirs cannot be empty")
	}
	for i, dir := range c.WikiDirs {
		if dir == "" {
			return fmt.Errorf("wiki_dirs[%d] cannot be empty", i)
		}
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("invalid extension '%s': must start with a dot", c.Extension)
	}
	if c.LogFile == "" {
		return fmt.Errorf("log_file cannot be empty")
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be positive")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}
	if c.Debounce < 0 {
		return fmt.Errorf("debounce cannot be negative")
	}

	for _, pattern := range c.ExcludePatterns {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid exclude pattern '%s': %w", pattern, err)
		}
	}

	return nil
}

// ExpandPaths expands any ~ or relative paths to absolute paths
func (c *Config) ExpandPaths() error {
	for i, dir := range c.WikiDirs {
		expanded, err := expandPath(dir)
		if err != nil {
			return fmt.Errorf("failed to expand wiki_dirs[%d]: %w", i, err)
		}
		c.WikiDirs[i] = expanded
	}

	var err error
	c.LogFile, err = expandPath(c.LogFile)
	if err != nil {
		return fmt.Errorf("failed to expand log_file: %w", err)
	}

	return nil
}

// IsExcluded reports whether the file at path matches an exclude pattern.
// Patterns are matched against the base name and the slash separated path
// relative to root
func (c *Config) IsExcluded(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pattern := range c.ExcludePatterns {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if strings.HasSuffix(pattern, "/") && strings.HasPrefix(rel+"/", pattern) {
			return true
		}
	}
	return false
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) (string, error) {
	if path == "" {
		return path, nil
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		path = filepath.Join(homeDir, path[1:])
	}

	// Convert to absolute path
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return absPath, nil
}
