// Package app is marquee's composition root.
//
// # Startup
//
//  1. config.Load: TOML file plus MARQUEE_* overrides
//  2. logging.Open: the log file under log_dir (the TUI owns the terminal)
//  3. catalog.Open: built-in, file or http(s) source
//  4. urlstate.Parse: the initial link against base_url
//  5. prefs.Load: saved theme, unless --theme overrides it
//  6. ui.Run: blocks until the user quits or the context is cancelled
//
// Open performs steps 1-3 and is shared with the scripted commands in
// package cli, which never start the TUI.
//
// # Errors
//
// Config, log and catalog failures are fatal and returned wrapped. Anything
// that goes wrong once the UI is running (share, browser, unknown deep
// link) is reported inside the UI and logged.
package app
