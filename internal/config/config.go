package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the resolve command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Environment variables read by Load.
const (
	EnvFormat    = "DEPCLOSURE_FORMAT"
	EnvLogLevel  = "DEPCLOSURE_LOG_LEVEL"
	EnvCacheSize = "DEPCLOSURE_CACHE_SIZE"
)

// DefaultCacheSize matches the resolver default.
const DefaultCacheSize = 1024

// Config holds the settings shared by all commands
type Config struct {
	// Format is the output format of resolved dependencies
	Format string `yaml:"format"`
	// LogLevel is a logrus level name; logs go to stderr
	LogLevel string `yaml:"log_level"`
	// CacheSize is the number of memoized closures per batch, 0 disables memoization
	CacheSize int `yaml:"cache_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:    FormatText,
		LogLevel:  logrus.WarnLevel.String(),
		CacheSize: DefaultCacheSize,
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables. The result is not
// validated: callers apply flag overrides first and then call Validate or
// ValidateSettings.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadFile overlays the YAML file at path onto cfg
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overlays environment variables onto cfg
func applyEnv(cfg *Config) error {
	cfg.Format = getEnv(EnvFormat, cfg.Format)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)

	cacheSize, err := getEnvInt(EnvCacheSize, cfg.CacheSize)
	if err != nil {
		return err
	}
	cfg.CacheSize = cacheSize
	return nil
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if !IsSupportedFormat(c.Format) {
		return fmt.Errorf("unknown format: %s (valid options: %s)", c.Format, SupportedFormats())
	}
	return c.ValidateSettings()
}

// ValidateSettings checks every value except Format, which only commands
// with a structured output choose.
func (c *Config) ValidateSettings() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// IsSupportedFormat reports whether format names a known output format.
func IsSupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatText, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns the known output formats as a comma-separated list.
func SupportedFormats() string {
	return strings.Join([]string{FormatText, FormatJSON, FormatYAML}, ", ")
}

// getEnv returns an environment variable or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, value)
	}
	return intVal, nil
}
