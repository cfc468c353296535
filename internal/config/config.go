package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for a single run
type Config struct {
	// Query tool settings
	GNPath string

	// Directory that stripped source paths are relative to
	SourceRoot string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	GNPath     string
	SourceRoot string
	Match      string
	Exclude    string
	Progress   bool
	Verbose    bool
	Files      bool
	JSON       bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		GNPath:     DefaultGNPath,
		SourceRoot: DefaultSourceRoot,
	}
}

// Load creates a config from defaults, the environment and flags, in
// increasing order of precedence. A .env file in the working directory is
// read first; variables already set in the process environment win over it.
func Load(flags Flags) *Config {
	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(DefaultEnvFile)

	cfg := New()
	cfg.Flags = flags

	if v := os.Getenv(EnvGNPath); v != "" {
		cfg.GNPath = v
	}
	if v := os.Getenv(EnvSourceRoot); v != "" {
		cfg.SourceRoot = v
	}

	// Apply flag overrides
	if flags.GNPath != "" {
		cfg.GNPath = flags.GNPath
	}
	if flags.SourceRoot != "" {
		cfg.SourceRoot = flags.SourceRoot
	}

	return cfg
}

// GetSourcePath returns the file system path of a source path that already
// had its root marker removed
func (c *Config) GetSourcePath(relative string) string {
	if c.SourceRoot == "" || c.SourceRoot == DefaultSourceRoot {
		return relative
	}
	if relative == "" {
		return ""
	}
	return filepath.Join(c.SourceRoot, relative)
}
