package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Errors returned by configuration loading.
var (
	// ErrMissingEndpoint indicates no translation endpoint was set
	// anywhere.
	ErrMissingEndpoint = errors.New("missing TRANSLATION_API_URL environment variable")

	// ErrFileNotFound indicates an explicitly requested config file
	// does not exist.
	ErrFileNotFound = errors.New("config file not found")
)

// ParseError wraps a TOML decoding failure with the file it came from.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Config holds all application settings.
type Config struct {
	// EndpointURL is the translation API endpoint. Required.
	EndpointURL string

	// APIKey authenticates against the endpoint. Optional.
	APIKey string

	// AuthHeader names the header the key is sent in. Empty means
	// Authorization with the DeepL auth-key scheme.
	AuthHeader string

	// LeftLang and RightLang are the startup language codes for the
	// two panes.
	LeftLang  string
	RightLang string

	// QuietPeriod is the debounce delay before an edit is translated.
	QuietPeriod time.Duration

	// LogLevel controls log verbosity: debug, info, warn, or error.
	LogLevel string

	// LogFile is where logs go; empty disables logging. The terminal
	// owns stderr, so logs never go there.
	LogFile string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LeftLang:    "EN",
		RightLang:   "ES",
		QuietPeriod: 350 * time.Millisecond,
		LogLevel:    "info",
	}
}

// Load builds the effective configuration: defaults, then the TOML
// file at path if given, then environment overrides. A missing file is
// an error only when its path was explicit.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	// Durations are written as strings in the file ("500ms"), so the
	// file schema is decoded separately and merged field by field;
	// absent keys leave the defaults alone.
	var f fileConfig
	if err := toml.Unmarshal(data, &f); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return f.mergeInto(c, path)
}

type fileConfig struct {
	EndpointURL *string `toml:"endpoint_url"`
	APIKey      *string `toml:"api_key"`
	AuthHeader  *string `toml:"auth_header"`
	LeftLang    *string `toml:"left_lang"`
	RightLang   *string `toml:"right_lang"`
	QuietPeriod *string `toml:"quiet_period"`
	LogLevel    *string `toml:"log_level"`
	LogFile     *string `toml:"log_file"`
}

func (f *fileConfig) mergeInto(c *Config, path string) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&c.EndpointURL, f.EndpointURL)
	setString(&c.APIKey, f.APIKey)
	setString(&c.AuthHeader, f.AuthHeader)
	setString(&c.LeftLang, f.LeftLang)
	setString(&c.RightLang, f.RightLang)
	setString(&c.LogLevel, f.LogLevel)
	setString(&c.LogFile, f.LogFile)

	if f.QuietPeriod != nil {
		d, err := time.ParseDuration(*f.QuietPeriod)
		if err != nil {
			return &ParseError{Path: path, Err: fmt.Errorf("quiet_period: %w", err)}
		}
		c.QuietPeriod = d
	}
	return nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("TRANSLATION_API_URL"); ok {
		c.EndpointURL = v
	}
	if v, ok := os.LookupEnv("TRANSLATION_API_KEY"); ok {
		c.APIKey = v
	}
	if v, ok := os.LookupEnv("TRANSLATION_API_AUTH_HEADER"); ok {
		c.AuthHeader = v
	}
	if v, ok := os.LookupEnv("POLYGLOT_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv("POLYGLOT_LOG_FILE"); ok {
		c.LogFile = v
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return ErrMissingEndpoint
	}
	if c.QuietPeriod < 0 {
		return fmt.Errorf("quiet_period must not be negative, got %s", c.QuietPeriod)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
