// Package config loads marquee's runtime configuration.
//
// # Overview
//
// Settings come from an optional TOML file and can be overridden by
// MARQUEE_* environment variables. marquee runs without any configuration:
// the built-in catalog, a placeholder base URL and the default debounce are
// enough to browse.
//
// # Resolution Order
//
//  1. Built-in defaults (Default)
//  2. The config file: an explicit path, or ~/.config/marquee/config.toml
//  3. Environment overrides
//
// A missing config file is not an error. A malformed one is.
//
// # TOML Format
//
//	catalog = "~/movies.yaml"            # file path or http(s) URL; empty = built-in
//	base_url = "https://marquee.local/"  # link that q and #id are attached to
//	search_debounce = 300                # milliseconds
//	back_to_top_threshold = 20           # rows scrolled before back-to-top shows
//	share_command = "termux-share {url}" # {title} {text} {url} placeholders
//	log_dir = "~/.local/state/marquee"
//	log_level = "info"
//
// # Environment
//
//   - MARQUEE_CATALOG
//   - MARQUEE_BASE_URL
//   - MARQUEE_SEARCH_DEBOUNCE (milliseconds like the file, or a Go duration such as "150ms")
//   - MARQUEE_BACK_TO_TOP
//   - MARQUEE_SHARE_COMMAND
//   - MARQUEE_LOG_DIR
//   - MARQUEE_LOG_LEVEL
//
// Values are trimmed and paths are tilde-expanded after overrides apply, so
// the same rules hold regardless of where a value came from. Remote catalog
// URLs are left untouched.
package config
