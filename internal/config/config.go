package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/plankboard/plank/internal/config/colors"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}
}

// Load loads config from the user's config directory.
// Returns the default config if no file exists.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// loadThemeFile merges the theme pointed at by PLANK_THEME_FILE, if any
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("PLANK_THEME_FILE")
	if themeFile == "" {
		return
	}

	if _, err := os.Stat(themeFile); err != nil {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "plank", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "plank", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
