package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting of the aura server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port     string `yaml:"port"`
	Timezone string `yaml:"timezone"`
}

// DatabaseConfig holds the SQLite file location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// AuthConfig holds session signing and cookie settings.
type AuthConfig struct {
	SecretKey    string `yaml:"secret_key"`
	CookieSecure bool   `yaml:"cookie_secure"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     "8080",
			Timezone: "UTC",
		},
		Database: DatabaseConfig{
			Path: filepath.Join("data", "aura.db"),
		},
		Auth: AuthConfig{
			SecretKey:    "change_me_in_production",
			CookieSecure: false,
		},
	}
}

// Load reads the YAML config at path (if it exists) on top of the defaults,
// then applies environment overrides. An empty path falls back to the
// AURA_CONFIG environment variable. Environment variables always win.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("AURA_CONFIG")
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Missing file falls back to defaults.
		default:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if value := os.Getenv("PORT"); value != "" {
		cfg.Server.Port = value
	}
	if value := os.Getenv("TZ"); value != "" {
		cfg.Server.Timezone = value
	}
	if value := os.Getenv("DB_PATH"); value != "" {
		cfg.Database.Path = value
	}
	if value := os.Getenv("SECRET_KEY"); value != "" {
		cfg.Auth.SecretKey = value
	}
	if value := os.Getenv("COOKIE_SECURE"); value != "" {
		cfg.Auth.CookieSecure = value == "1" || value == "true"
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server.port must not be empty")
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if cfg.Auth.SecretKey == "" {
		return fmt.Errorf("auth.secret_key must not be empty")
	}
	return nil
}
