package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Backend  BackendConfig  `toml:"backend"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Database DatabaseConfig `toml:"database"`
	TUI      TUIConfig      `toml:"tui"`
}

// BackendConfig contains settings for the tracker backend origin.
type BackendConfig struct {
	BaseURL string `toml:"base_url"`
}

// CatalogConfig contains settings for the metadata proxy endpoints.
type CatalogConfig struct {
	RateLimit float64 `toml:"rate_limit"` // requests per second against /api/*
	Burst     int     `toml:"burst"`
}

// DatabaseConfig contains local SQLite settings for the session store and title cache.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// TUIConfig contains interactive mode settings.
type TUIConfig struct {
	LogPath string `toml:"log_path"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Environment variables override file values (see [ApplyEnv]). A .env file in
// the working directory is honored when present.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyEnv(&config)
	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	ApplyEnv(&config)
	return &config
}

// LoadEnv loads a .env file from the working directory when one exists.
//
// Missing files are not an error; a malformed file is.
func LoadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	return godotenv.Load()
}

// ApplyEnv overrides config fields from CINEVAULT_* environment variables.
func ApplyEnv(config *Config) {
	if v := os.Getenv("CINEVAULT_BACKEND_URL"); v != "" {
		config.Backend.BaseURL = v
	}
	if v := os.Getenv("CINEVAULT_DB_PATH"); v != "" {
		config.Database.Path = v
	}
	if v := os.Getenv("CINEVAULT_RATE_LIMIT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			config.Catalog.RateLimit = parsed
		}
	}
	if v := os.Getenv("CINEVAULT_TUI_LOG"); v != "" {
		config.TUI.LogPath = v
	}
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
