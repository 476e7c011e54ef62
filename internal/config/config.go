// Package config loads runtime settings for the image-ascii servers and CLI.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults (Default)
//  2. An optional TOML file
//  3. IMAGE_ASCII_* environment variables
//
// Example file:
//
//	addr = ":8080"
//	log_level = "debug"
//	background = "#FFFFFF"
//	max_body_bytes = 10485760
//	max_dimension = 1000
//	read_timeout = "30s"
//	write_timeout = "30s"
//
// The glyph threshold and alphabet are not configurable here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ironsheep/image-ascii/internal/ascii"
	"github.com/ironsheep/image-ascii/internal/imaging"
)

// Environment variables that override file settings.
const (
	EnvAddr         = "IMAGE_ASCII_ADDR"
	EnvLogLevel     = "IMAGE_ASCII_LOG_LEVEL"
	EnvBackground   = "IMAGE_ASCII_BACKGROUND"
	EnvMaxBodyBytes = "IMAGE_ASCII_MAX_BODY_BYTES"
	EnvMaxDimension = "IMAGE_ASCII_MAX_DIMENSION"
	EnvReadTimeout  = "IMAGE_ASCII_READ_TIMEOUT"
	EnvWriteTimeout = "IMAGE_ASCII_WRITE_TIMEOUT"
)

const defaultMaxBodyBytes = 10 << 20

// Duration is a time.Duration that decodes from TOML strings like "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds runtime settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `toml:"addr"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// Background is the hex color placed behind transparent pixels.
	Background string `toml:"background"`

	// MaxBodyBytes caps the HTTP request body.
	MaxBodyBytes int64 `toml:"max_body_bytes"`

	// MaxDimension caps rows and cols.
	MaxDimension int `toml:"max_dimension"`

	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:         ":8080",
		LogLevel:     "info",
		Background:   "#FFFFFF",
		MaxBodyBytes: defaultMaxBodyBytes,
		MaxDimension: ascii.DefaultMaxDimension,
		ReadTimeout:  Duration{30 * time.Second},
		WriteTimeout: Duration{30 * time.Second},
	}
}

// Load builds a Config from defaults, the TOML file at path (skipped when
// path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from environment variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddr); ok {
		c.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvBackground); ok {
		c.Background = v
	}
	if v, ok := lookup(EnvMaxBodyBytes); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBodyBytes, err)
		}
		c.MaxBodyBytes = n
	}
	if v, ok := lookup(EnvMaxDimension); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxDimension, err)
		}
		c.MaxDimension = n
	}
	for _, d := range []struct {
		env string
		dst *Duration
	}{
		{EnvReadTimeout, &c.ReadTimeout},
		{EnvWriteTimeout, &c.WriteTimeout},
	} {
		if v, ok := lookup(d.env); ok {
			if err := d.dst.UnmarshalText([]byte(v)); err != nil {
				return fmt.Errorf("%s: %w", d.env, err)
			}
		}
	}
	return nil
}

// Validate rejects settings the servers cannot run with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if _, err := imaging.ParseBackground(c.Background); err != nil {
		return err
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.MaxDimension <= 0 {
		return fmt.Errorf("max_dimension must be positive, got %d", c.MaxDimension)
	}
	if c.ReadTimeout.Duration < 0 || c.WriteTimeout.Duration < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Conversion returns the conversion settings derived from c.
func (c Config) Conversion() (ascii.Config, error) {
	bg, err := imaging.ParseBackground(c.Background)
	if err != nil {
		return ascii.Config{}, err
	}
	conv := ascii.DefaultConfig()
	conv.MaxDimension = c.MaxDimension
	conv.Background = bg
	return conv, nil
}
