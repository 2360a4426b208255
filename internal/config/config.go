// Package config loads server configuration from files and environment
// variables, with defaults suitable for local development.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/clinical-pathways-server/internal/domain"
)

// Manager loads and validates the server configuration using Viper.
type Manager struct {
	config *domain.Config
}

// NewManager creates a configuration manager and loads configuration.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/clinical-pathways-server/")

	viper.SetEnvPrefix("PATHWAYS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Audit defaults
	viper.SetDefault("audit.enabled", true)
	viper.SetDefault("audit.backend", "sqlite")
	viper.SetDefault("audit.path", "./data/audit.db")
	viper.SetDefault("audit.database_url", "")
	viper.SetDefault("audit.migrations_path", "./migrations")

	// Rate limit defaults
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)

	// Cache defaults
	viper.SetDefault("cache.max_entries", 256)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetAuditConfig returns audit-trail configuration
func (m *Manager) GetAuditConfig() *domain.AuditConfig {
	return &m.config.Audit
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Audit.Enabled {
		switch config.Audit.Backend {
		case "sqlite":
			if config.Audit.Path == "" {
				return fmt.Errorf("audit path is required for the sqlite backend")
			}
		case "postgres":
			if config.Audit.DatabaseURL == "" {
				return fmt.Errorf("audit database_url is required for the postgres backend")
			}
		default:
			return fmt.Errorf("unknown audit backend: %s", config.Audit.Backend)
		}
	}

	if config.RateLimit.Enabled {
		if config.RateLimit.RequestsPerSecond <= 0 {
			return fmt.Errorf("rate_limit.requests_per_second must be positive")
		}
		if config.RateLimit.Burst <= 0 {
			return fmt.Errorf("rate_limit.burst must be positive")
		}
	}

	if config.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}
