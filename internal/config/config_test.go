package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetSourcePath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		relative string
		expected string
	}{
		{
			name:     "default root keeps path relative to cwd",
			config:   New(),
			relative: "components/foo/foo_unittest.cc",
			expected: "components/foo/foo_unittest.cc",
		},
		{
			name:     "empty root behaves like default",
			config:   &Config{},
			relative: "base/a.cc",
			expected: "base/a.cc",
		},
		{
			name:     "custom root is joined",
			config:   &Config{SourceRoot: "/src/chromium/src"},
			relative: "base/a.cc",
			expected: "/src/chromium/src/base/a.cc",
		},
		{
			name:     "empty relative path stays empty",
			config:   &Config{SourceRoot: "/src"},
			relative: "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetSourcePath(tt.relative)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.GNPath != DefaultGNPath {
		t.Errorf("expected GNPath %s, got %s", DefaultGNPath, cfg.GNPath)
	}

	if cfg.SourceRoot != DefaultSourceRoot {
		t.Errorf("expected SourceRoot %s, got %s", DefaultSourceRoot, cfg.SourceRoot)
	}
}

func TestLoad(t *testing.T) {
	// Run in an empty dir so no stray .env is picked up
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv(EnvGNPath, "/opt/depot_tools/gn")
		t.Setenv(EnvSourceRoot, "")

		cfg := Load(Flags{})
		if cfg.GNPath != "/opt/depot_tools/gn" {
			t.Errorf("expected GNPath from env, got %s", cfg.GNPath)
		}
		if cfg.SourceRoot != DefaultSourceRoot {
			t.Errorf("expected default SourceRoot, got %s", cfg.SourceRoot)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv(EnvGNPath, "/opt/depot_tools/gn")

		cfg := Load(Flags{GNPath: "./gn", SourceRoot: "src"})
		if cfg.GNPath != "./gn" {
			t.Errorf("expected GNPath from flag, got %s", cfg.GNPath)
		}
		if cfg.SourceRoot != "src" {
			t.Errorf("expected SourceRoot from flag, got %s", cfg.SourceRoot)
		}
	})

	t.Run("reads .env file", func(t *testing.T) {
		t.Setenv(EnvGNPath, "")
		os.Unsetenv(EnvGNPath)
		envFile := filepath.Join(dir, DefaultEnvFile)
		if err := os.WriteFile(envFile, []byte(EnvGNPath+"=/from/dotenv/gn\n"), 0644); err != nil {
			t.Fatalf("write .env: %v", err)
		}
		defer os.Remove(envFile)
		defer os.Unsetenv(EnvGNPath)

		cfg := Load(Flags{})
		if cfg.GNPath != "/from/dotenv/gn" {
			t.Errorf("expected GNPath from .env, got %s", cfg.GNPath)
		}
	})
}
