package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"adrgrip/internal/domain"
	"adrgrip/internal/storage"
)

// Config represents the application configuration
type Config struct {
	Version     int    `toml:"version"`
	StatePath   string `toml:"state_path"`   // where the persisted editor state lives
	LogFile     string `toml:"log_file"`     // empty disables file logging
	DefaultMode string `toml:"default_mode"` // mode used when no state is persisted yet
}

// Mode returns the configured default mode, falling back to basic
func (c *Config) Mode() domain.Mode {
	return domain.ParseMode(c.DefaultMode)
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "adrgrip", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service reading a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(cs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Fill in anything the file left out
	defaults := DefaultConfig()
	if cfg.StatePath == "" {
		cfg.StatePath = defaults.StatePath
	}
	if cfg.DefaultMode == "" {
		cfg.DefaultMode = defaults.DefaultMode
	}

	return &cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	dir := filepath.Dir(cs.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cs.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:     1,
		StatePath:   storage.DefaultStatePath(),
		LogFile:     "adrgrip.log",
		DefaultMode: string(domain.ModeBasic),
	}
}
