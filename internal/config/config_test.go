package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"TRANSLATION_API_URL",
		"TRANSLATION_API_KEY",
		"TRANSLATION_API_AUTH_HEADER",
		"POLYGLOT_LOG_LEVEL",
		"POLYGLOT_LOG_FILE",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polyglot.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.LeftLang != "EN" || cfg.RightLang != "ES" {
		t.Errorf("default languages = %s/%s, want EN/ES", cfg.LeftLang, cfg.RightLang)
	}
	if cfg.QuietPeriod != 350*time.Millisecond {
		t.Errorf("default quiet period = %s, want 350ms", cfg.QuietPeriod)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %s, want info", cfg.LogLevel)
	}
}

func TestLoadRequiresEndpoint(t *testing.T) {
	clearEnv(t)
	_, err := Load("")
	if !errors.Is(err, ErrMissingEndpoint) {
		t.Errorf("Load() error = %v, want ErrMissingEndpoint", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSLATION_API_URL", "https://api.example.com/v2/translate")
	t.Setenv("TRANSLATION_API_KEY", "secret")
	t.Setenv("TRANSLATION_API_AUTH_HEADER", "X-Api-Key")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EndpointURL != "https://api.example.com/v2/translate" {
		t.Errorf("EndpointURL = %q", cfg.EndpointURL)
	}
	if cfg.APIKey != "secret" || cfg.AuthHeader != "X-Api-Key" {
		t.Errorf("credentials = %q/%q", cfg.APIKey, cfg.AuthHeader)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
endpoint_url = "https://file.example.com"
left_lang = "DE"
right_lang = "JA"
quiet_period = "500ms"
log_level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EndpointURL != "https://file.example.com" {
		t.Errorf("EndpointURL = %q", cfg.EndpointURL)
	}
	if cfg.LeftLang != "DE" || cfg.RightLang != "JA" {
		t.Errorf("languages = %s/%s, want DE/JA", cfg.LeftLang, cfg.RightLang)
	}
	if cfg.QuietPeriod != 500*time.Millisecond {
		t.Errorf("QuietPeriod = %s, want 500ms", cfg.QuietPeriod)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `endpoint_url = "https://file.example.com"`)
	t.Setenv("TRANSLATION_API_URL", "https://env.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.EndpointURL != "https://env.example.com" {
		t.Errorf("EndpointURL = %q, want the env value", cfg.EndpointURL)
	}
}

func TestFileKeepsUnsetDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `endpoint_url = "https://file.example.com"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LeftLang != "EN" || cfg.QuietPeriod != 350*time.Millisecond {
		t.Error("file without those keys clobbered the defaults")
	}
}

func TestMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Load() error = %v, want ErrFileNotFound", err)
	}
}

func TestMalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `endpoint_url = [broken`)

	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
}

func TestBadQuietPeriod(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
endpoint_url = "https://file.example.com"
quiet_period = "soon"
`)
	_, err := Load(path)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Errorf("Load() error = %v, want *ParseError", err)
	}
}

func TestBadLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSLATION_API_URL", "https://env.example.com")
	t.Setenv("POLYGLOT_LOG_LEVEL", "loud")

	if _, err := Load(""); err == nil {
		t.Error("Load() accepted an unknown log level")
	}
}
