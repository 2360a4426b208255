package domain

import (
	"time"
)

// Config represents the main application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Audit     AuditConfig     `mapstructure:"audit"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// AuditConfig represents the request audit-trail configuration. The audit
// store records service requests for traceability; it never persists clinical
// plans.
type AuditConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Backend string `mapstructure:"backend"` // "sqlite" or "postgres"
	// SQLite
	Path string `mapstructure:"path"`
	// PostgreSQL
	DatabaseURL string `mapstructure:"database_url"`
	// Directory of versioned SQL migrations, applied at startup when the
	// postgres backend is selected. Empty skips migration.
	MigrationsPath string `mapstructure:"migrations_path"`
}

// RateLimitConfig represents per-client API rate limiting configuration.
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// CacheConfig represents the in-process metadata cache configuration.
type CacheConfig struct {
	MaxEntries int `mapstructure:"max_entries"`
}

// LoggingConfig represents logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "text"
	Output string `mapstructure:"output"`
}
