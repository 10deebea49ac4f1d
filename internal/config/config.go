package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures marquee's runtime settings.
type Config struct {
	Catalog            string        `env:"MARQUEE_CATALOG"`
	BaseURL            string        `env:"MARQUEE_BASE_URL"`
	SearchDebounce     time.Duration `env:"MARQUEE_SEARCH_DEBOUNCE"`
	BackToTopThreshold int           `env:"MARQUEE_BACK_TO_TOP"`
	ShareCommand       string        `env:"MARQUEE_SHARE_COMMAND"`
	LogDir             string        `env:"MARQUEE_LOG_DIR"`
	LogLevel           string        `env:"MARQUEE_LOG_LEVEL"`
}

const (
	defaultConfigPath     = "~/.config/marquee/config.toml"
	defaultLogDir         = "~/.local/state/marquee"
	defaultBaseURL        = "https://marquee.local/"
	defaultSearchDebounce = 300 * time.Millisecond
	defaultBackToTop      = 20
	defaultLogLevel       = "info"
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		BaseURL:            defaultBaseURL,
		SearchDebounce:     defaultSearchDebounce,
		BackToTopThreshold: defaultBackToTop,
		LogDir:             mustExpand(defaultLogDir),
		LogLevel:           defaultLogLevel,
	}
}

// Load reads the config file at path (or the default location), then
// applies MARQUEE_* environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{FuncMap: envParsers}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// envParsers lets MARQUEE_SEARCH_DEBOUNCE use the same unit as the file:
// a bare integer is milliseconds. Go durations such as "150ms" also work.
var envParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeOf(time.Duration(0)): parseMillis,
}

func parseMillis(v string) (interface{}, error) {
	v = strings.TrimSpace(v)
	if ms, err := strconv.Atoi(v); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return nil, fmt.Errorf("want milliseconds or a duration: %w", err)
	}
	return d, nil
}

// LogPath returns the log file location.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return filepath.Join(mustExpand(defaultLogDir), "marquee.log")
	}
	return filepath.Join(c.LogDir, "marquee.log")
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog            string `toml:"catalog"`
		BaseURL            string `toml:"base_url"`
		SearchDebounceMS   int    `toml:"search_debounce"`
		BackToTopThreshold int    `toml:"back_to_top_threshold"`
		ShareCommand       string `toml:"share_command"`
		LogDir             string `toml:"log_dir"`
		LogLevel           string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	cfg.Catalog = raw.Catalog
	cfg.ShareCommand = raw.ShareCommand
	if strings.TrimSpace(raw.BaseURL) != "" {
		cfg.BaseURL = raw.BaseURL
	}
	if raw.SearchDebounceMS > 0 {
		cfg.SearchDebounce = time.Duration(raw.SearchDebounceMS) * time.Millisecond
	}
	if raw.BackToTopThreshold > 0 {
		cfg.BackToTopThreshold = raw.BackToTopThreshold
	}
	if strings.TrimSpace(raw.LogDir) != "" {
		cfg.LogDir = raw.LogDir
	}
	if strings.TrimSpace(raw.LogLevel) != "" {
		cfg.LogLevel = raw.LogLevel
	}
	return nil
}

func (c *Config) normalize() {
	c.Catalog = strings.TrimSpace(c.Catalog)
	if c.Catalog != "" && !isRemote(c.Catalog) {
		c.Catalog = mustExpand(c.Catalog)
	}

	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.SearchDebounce <= 0 {
		c.SearchDebounce = defaultSearchDebounce
	}
	if c.BackToTopThreshold <= 0 {
		c.BackToTopThreshold = defaultBackToTop
	}
	c.ShareCommand = strings.TrimSpace(c.ShareCommand)

	c.LogDir = strings.TrimSpace(c.LogDir)
	if c.LogDir == "" {
		c.LogDir = defaultLogDir
	}
	c.LogDir = mustExpand(c.LogDir)

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
