package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image-ascii.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should validate: %v", err)
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
addr = "127.0.0.1:9000"
log_level = "debug"
background = "#000000"
max_body_bytes = 2048
max_dimension = 64
read_timeout = "5s"
write_timeout = "1m"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
	if cfg.MaxBodyBytes != 2048 || cfg.MaxDimension != 64 {
		t.Errorf("limits = %d/%d", cfg.MaxBodyBytes, cfg.MaxDimension)
	}
	if cfg.ReadTimeout.Duration != 5*time.Second || cfg.WriteTimeout.Duration != time.Minute {
		t.Errorf("timeouts = %v/%v", cfg.ReadTimeout, cfg.WriteTimeout)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, `threshold = 128`)
	if _, err := Load(path); err == nil {
		t.Error("Load should reject unknown keys")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/image-ascii.toml"); err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `addr = ":7000"`)
	t.Setenv(EnvAddr, ":7001")
	t.Setenv(EnvMaxDimension, "12")
	t.Setenv(EnvReadTimeout, "2s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":7001" {
		t.Errorf("Addr = %q, want :7001", cfg.Addr)
	}
	if cfg.MaxDimension != 12 {
		t.Errorf("MaxDimension = %d, want 12", cfg.MaxDimension)
	}
	if cfg.ReadTimeout.Duration != 2*time.Second {
		t.Errorf("ReadTimeout = %v, want 2s", cfg.ReadTimeout)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"max body", map[string]string{EnvMaxBodyBytes: "lots"}},
		{"max dimension", map[string]string{EnvMaxDimension: "1.5"}},
		{"timeout", map[string]string{EnvWriteTimeout: "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			lookup := func(k string) (string, bool) {
				v, ok := tt.env[k]
				return v, ok
			}
			if err := cfg.applyEnv(lookup); err == nil {
				t.Error("applyEnv should fail")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad background", func(c *Config) { c.Background = "white" }},
		{"zero body", func(c *Config) { c.MaxBodyBytes = 0 }},
		{"zero dimension", func(c *Config) { c.MaxDimension = 0 }},
		{"negative timeout", func(c *Config) { c.ReadTimeout.Duration = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should fail")
			}
		})
	}
}

func TestConversion(t *testing.T) {
	cfg := Default()
	cfg.MaxDimension = 33
	cfg.Background = "#000000"

	conv, err := cfg.Conversion()
	if err != nil {
		t.Fatalf("Conversion failed: %v", err)
	}
	if conv.MaxDimension != 33 {
		t.Errorf("MaxDimension = %d, want 33", conv.MaxDimension)
	}
	r, g, b, _ := conv.Background.RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Background = (%d,%d,%d), want black", r, g, b)
	}
	if conv.Colors != 2 {
		t.Errorf("Colors = %d, want 2", conv.Colors)
	}
}
