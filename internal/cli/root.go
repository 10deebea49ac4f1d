package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/ui"
)

type globals struct {
	ConfigPath string
	Catalog    string
	PrefsPath  string
	Theme      string
	PrintLink  bool
}

func (g *globals) options() app.Options {
	return app.Options{
		ConfigPath: g.ConfigPath,
		PrefsPath:  g.PrefsPath,
		Catalog:    g.Catalog,
		Theme:      g.Theme,
		PrintLink:  g.PrintLink,
	}
}

// NewRootCmd builds the marquee command tree.
func NewRootCmd() *cobra.Command {
	g := &globals{}

	cmd := &cobra.Command{
		Use:           "marquee [link]",
		Short:         "Browse a movie catalog in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Browse the built-in catalog
  marquee

  # Start with a search and a movie open
  marquee '?q=thor#thor'

  # Scriptable commands
  marquee list --phase 2
  marquee show iron-man
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTheme(g.Theme); err != nil {
				return err
			}
			opts := g.options()
			if len(args) == 1 {
				opts.Link = args[0]
			}
			opts.Stdout = cmd.OutOrStdout()
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.ConfigPath, "config", "", "Path to config.toml (default ~/.config/marquee/config.toml)")
	flags.StringVar(&g.Catalog, "catalog", "", "Catalog file or http(s) URL (overrides config)")
	flags.StringVar(&g.PrefsPath, "prefs", "", "Path to prefs.toml (default ~/.config/marquee/prefs.toml)")
	flags.StringVar(&g.Theme, "theme", "", "Theme: "+strings.Join(ui.ThemeNames(), ", "))
	cmd.Flags().BoolVar(&g.PrintLink, "print-link", true, "Print the final link on exit")

	cmd.AddCommand(newListCmd(g))
	cmd.AddCommand(newShowCmd(g))
	cmd.AddCommand(newTimelineCmd(g))
	cmd.AddCommand(newLinkCmd(g))
	cmd.AddCommand(newLogsCmd(g))

	return cmd
}

func validateTheme(name string) error {
	if name == "" || slices.Contains(ui.ThemeNames(), name) {
		return nil
	}
	return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ui.ThemeNames(), ", "))
}

// withSession opens a session for the duration of fn.
func withSession(cmd *cobra.Command, g *globals, fn func(*app.Session) error) error {
	sess, err := app.Open(cmd.Context(), g.options())
	if err != nil {
		return err
	}
	defer func() { _ = sess.Close() }()
	return fn(sess)
}
