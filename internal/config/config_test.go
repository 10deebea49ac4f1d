package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.BaseURL, defaultBaseURL)
	}
	if cfg.SearchDebounce != 120*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 120ms", cfg.SearchDebounce)
	}
	if cfg.BackToTopThreshold != 20 {
		t.Fatalf("BackToTopThreshold = %d, want 20", cfg.BackToTopThreshold)
	}
	if cfg.Catalog != "" {
		t.Fatalf("Catalog = %q, want empty (built-in)", cfg.Catalog)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "marquee.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
catalog = "  ~/movies.yaml  "
base_url = " https://movies.example/list "
search_debounce = 150
back_to_top_threshold = 40
share_command = "  termux-share {url} "
log_dir = "  ~/.marquee/logs  "
log_level = " DEBUG "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog != filepath.Join(home, "movies.yaml") {
		t.Fatalf("Catalog = %q, want it expanded under HOME", cfg.Catalog)
	}
	if cfg.BaseURL != "https://movies.example/list" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.SearchDebounce != 150*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 150ms", cfg.SearchDebounce)
	}
	if cfg.BackToTopThreshold != 40 {
		t.Fatalf("BackToTopThreshold = %d, want 40", cfg.BackToTopThreshold)
	}
	if cfg.ShareCommand != "termux-share {url}" {
		t.Fatalf("ShareCommand = %q", cfg.ShareCommand)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_RemoteCatalogIsNotExpanded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`catalog = "https://movies.example/catalog.json"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog != "https://movies.example/catalog.json" {
		t.Fatalf("Catalog = %q", cfg.Catalog)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
base_url = "https://from-file.example/"
share_command = "from-file {url}"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("MARQUEE_BASE_URL", "https://from-env.example/")
	t.Setenv("MARQUEE_SEARCH_DEBOUNCE", "50ms")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "https://from-env.example/" {
		t.Fatalf("BaseURL = %q, want env value", cfg.BaseURL)
	}
	if cfg.ShareCommand != "from-file {url}" {
		t.Fatalf("ShareCommand = %q, want file value kept", cfg.ShareCommand)
	}
	if cfg.SearchDebounce != 50*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 50ms", cfg.SearchDebounce)
	}
}

func TestLoad_EnvDebounceInMilliseconds(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "missing.toml")
	t.Setenv("MARQUEE_SEARCH_DEBOUNCE", "120")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SearchDebounce != 120*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 120ms", cfg.SearchDebounce)
	}
}

func TestLoad_EnvDebounceRejectsGarbage(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "missing.toml")
	t.Setenv("MARQUEE_SEARCH_DEBOUNCE", "soon")

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for a non-numeric debounce")
	}
}

func TestLoad_InvalidEnvFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MARQUEE_BACK_TO_TOP", "lots")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "parse env") {
		t.Fatalf("Load error = %v, want parse env error", err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`base_url = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
