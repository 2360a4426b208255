// This file contains the lightweight configuration for the command line
// client, which needs no config file and no server stack.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// LiteConfig is a simplified configuration for standalone operation.
// Everything comes from environment variables with sensible defaults.
type LiteConfig struct {
	// Data storage
	DataDir string // Base directory for data files

	// Audit settings
	AuditEnabled bool

	// Logging
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: json, text
}

// DefaultLiteConfig returns a configuration with sensible defaults.
func DefaultLiteConfig() *LiteConfig {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".clinical-pathways")

	return &LiteConfig{
		DataDir:      dataDir,
		AuditEnabled: true,
		LogLevel:     "warn",
		LogFormat:    "text",
	}
}

// LoadLiteConfig loads configuration from environment variables.
// Falls back to defaults if not set.
func LoadLiteConfig() *LiteConfig {
	cfg := DefaultLiteConfig()

	if v := os.Getenv("PATHWAYS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if v := os.Getenv("PATHWAYS_AUDIT_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AuditEnabled = b
		}
	}

	if v := os.Getenv("PATHWAYS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PATHWAYS_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}

// AuditDBPath returns the path to the local audit SQLite database.
func (c *LiteConfig) AuditDBPath() string {
	return filepath.Join(c.DataDir, "audit.db")
}

// ExportDir returns the directory for JSON exports.
func (c *LiteConfig) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *LiteConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.ExportDir(), 0755)
}
