// Package config handles the XDG configuration directory and the optional
// config.yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todoapp"

	// ConfigFile is the optional settings filename.
	ConfigFile = "config.yaml"

	// DefaultLogFile is the debug log filename used when none is configured.
	DefaultLogFile = "todoapp.log"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `yaml:"-"`

	// Seed starts the session with the sample tasks.
	Seed bool `yaml:"seed"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	// LogFile is the debug log path, relative to Dir unless absolute.
	LogFile string `yaml:"log_file"`

	// Quiet suppresses informational output.
	Quiet bool `yaml:"-"`
}

// New creates a Config with defaults and the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todoapp or $HOME/.config/todoapp.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:     dir,
		Seed:    true,
		LogFile: DefaultLogFile,
	}, nil
}

// Load creates a Config for configDir, then applies config.yaml (if present)
// and environment overrides, in that order.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(cfg.FilePath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFile, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ConfigFile, err)
		}
	}

	cfg.applyEnvOverrides()
	if strings.TrimSpace(cfg.LogFile) == "" {
		cfg.LogFile = DefaultLogFile
	}
	return cfg, nil
}

// applyEnvOverrides applies TODOAPP_* environment variables.
func (c *Config) applyEnvOverrides() {
	if v, ok := envBool("TODOAPP_DEBUG"); ok {
		c.Debug = v
	}
	if v, ok := envBool("TODOAPP_NO_SEED"); ok {
		c.Seed = !v
	}
}

func envBool(key string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	}
	return false, false
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to config.yaml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// LogPath returns the path of the debug log.
func (c *Config) LogPath() string {
	if filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	name := c.LogFile
	if name == "" {
		name = DefaultLogFile
	}
	return filepath.Join(c.Dir, name)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasFile checks if config.yaml exists.
func (c *Config) HasFile() bool {
	_, err := os.Stat(c.FilePath())
	return err == nil
}
