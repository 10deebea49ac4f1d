// Package cli defines marquee's command line.
//
// With no subcommand marquee starts the TUI, optionally on a link such as
// "?q=thor#thor". The subcommands print the same catalog views as plain
// tables for scripts: list, show, timeline and link.
package cli
