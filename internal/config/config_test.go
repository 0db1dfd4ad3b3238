package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	got := DefaultConfigDir()
	want := filepath.Join("/tmp/xdg", AppName)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDefaultConfigDir_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	got := DefaultConfigDir()
	want := filepath.Join("/tmp/home", ".config", AppName)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNew_ExplicitDir(t *testing.T) {
	cfg, err := New("/custom/dir")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Dir != "/custom/dir" {
		t.Errorf("got %q, want /custom/dir", cfg.Dir)
	}
}

func TestTokenLifecycle(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}

	if cfg.HasToken() {
		t.Error("fresh config dir should have no token")
	}

	if err := os.WriteFile(cfg.TokenPath(), []byte("{}"), 0600); err != nil {
		t.Fatal(err)
	}
	if !cfg.HasToken() {
		t.Error("expected HasToken after write")
	}

	if err := cfg.RemoveToken(); err != nil {
		t.Fatal(err)
	}
	if cfg.HasToken() {
		t.Error("expected token gone after RemoveToken")
	}
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}

	settings, err := cfg.Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.BaseURL != DefaultBaseURL {
		t.Errorf("got %q, want %q", settings.BaseURL, DefaultBaseURL)
	}
	if settings.TimeoutSeconds != 0 {
		t.Errorf("got timeout %d, want 0", settings.TimeoutSeconds)
	}
}

func TestLoad_ReadsSettings(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}
	yaml := "base_url: https://board.example.com\ntimeout: 30\n"
	if err := os.WriteFile(cfg.SettingsPath(), []byte(yaml), 0600); err != nil {
		t.Fatal(err)
	}

	settings, err := cfg.Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.BaseURL != "https://board.example.com" {
		t.Errorf("got %q", settings.BaseURL)
	}
	if settings.TimeoutSeconds != 30 {
		t.Errorf("got timeout %d, want 30", settings.TimeoutSeconds)
	}
}

func TestLoad_EmptyBaseURLFallsBack(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}
	if err := os.WriteFile(cfg.SettingsPath(), []byte("timeout: 5\n"), 0600); err != nil {
		t.Fatal(err)
	}

	settings, err := cfg.Load()
	if err != nil {
		t.Fatal(err)
	}
	if settings.BaseURL != DefaultBaseURL {
		t.Errorf("got %q, want %q", settings.BaseURL, DefaultBaseURL)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg := &Config{Dir: t.TempDir()}
	if err := os.WriteFile(cfg.SettingsPath(), []byte("base_url: [unclosed\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := cfg.Load(); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
