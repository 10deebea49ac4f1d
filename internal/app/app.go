package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/share"
	"github.com/five82/marquee/internal/ui"
	"github.com/five82/marquee/internal/urlstate"
)

// Options configure a marquee session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/marquee/prefs.toml
	Catalog    string // overrides the configured catalog source
	Theme      string // overrides the saved theme
	Link       string // initial link, e.g. "?q=thor#thor"
	PrintLink  bool   // print the final link to Stdout on exit
	Stdout     io.Writer
}

// Session is the loaded configuration, catalog and logger shared by the TUI
// and the scripted commands.
type Session struct {
	Config config.Config
	Store  *catalog.Store
	Logger *slog.Logger

	closeLog func() error
}

// Open loads configuration, opens the log file and loads the catalog.
// Callers must Close the session.
func Open(ctx context.Context, opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.Catalog != "" {
		cfg.Catalog = opts.Catalog
	}

	logger, closeLog, err := logging.Open(cfg.LogPath(), cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	store, err := catalog.Open(ctx, cfg.Catalog)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded", "source", catalogSource(cfg.Catalog), "items", store.Len())

	return &Session{Config: cfg, Store: store, Logger: logger, closeLog: closeLog}, nil
}

// Close releases the log file.
func (s *Session) Close() error {
	if s == nil || s.closeLog == nil {
		return nil
	}
	return s.closeLog()
}

// Location resolves link against the configured base URL.
func (s *Session) Location(link string) (*urlstate.Location, error) {
	loc, err := urlstate.Parse(link, s.Config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse link: %w", err)
	}
	return loc, nil
}

// Run boots the marquee TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	sess, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()
	slog.SetDefault(sess.Logger)

	loc, err := sess.Location(opts.Link)
	if err != nil {
		return err
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		sess.Logger.Warn("load prefs failed, using defaults", "error", err)
	}
	theme := userPrefs.Theme
	if opts.Theme != "" {
		theme = opts.Theme
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Catalog:   sess.Store,
		Location:  loc,
		Sharer:    share.NewService(sess.Config.ShareCommand, sess.Logger),
		OpenURL:   share.OpenURL,
		Logger:    sess.Logger,
		Debounce:  sess.Config.SearchDebounce,
		BackToTop: sess.Config.BackToTopThreshold,
		ThemeName: theme,
		PrefsPath: opts.PrefsPath,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	sess.Logger.Info("session ended", "link", loc.String())

	if opts.PrintLink && opts.Stdout != nil {
		_, _ = fmt.Fprintln(opts.Stdout, loc.String())
	}
	return nil
}

func catalogSource(source string) string {
	if source == "" {
		return "built-in"
	}
	return source
}
