// Package config loads service configuration from yaml and environment.
package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// HTTPConfig defines the listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// DatabaseConfig defines the Postgres connection.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// AuthConfig defines JWT auth. An empty secret disables auth, for local
// demo runs only.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

// CatalogueConfig defines catalogue store behavior.
type CatalogueConfig struct {
	SeedOnStart bool   `yaml:"seed_on_start"`
	Table       string `yaml:"table"`
}

// Config is the service configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Catalogue CatalogueConfig `yaml:"catalogue"`
}

// Load builds configuration from defaults, an optional yaml file named by
// LOADPROFILE_CONFIG, and environment overrides, in that order.
func Load() (Config, error) {
	cfg := Config{
		HTTP:      HTTPConfig{Addr: ":8080"},
		Catalogue: CatalogueConfig{SeedOnStart: true, Table: "appliances"},
	}

	if path := os.Getenv("LOADPROFILE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	cfg.HTTP.Addr = getenvDefault("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.Database.URL = getenvDefault("DATABASE_URL", cfg.Database.URL)
	cfg.Auth.JWTSecret = getenvDefault("JWT_SECRET", cfg.Auth.JWTSecret)
	cfg.Catalogue.SeedOnStart = getenvBoolDefault("SEED_ON_START", cfg.Catalogue.SeedOnStart)
	cfg.Catalogue.Table = getenvDefault("APPLIANCE_TABLE", cfg.Catalogue.Table)
	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvBoolDefault(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
