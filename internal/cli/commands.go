package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
	"github.com/five82/marquee/internal/filter"
)

func newListCmd(g *globals) *cobra.Command {
	var (
		query string
		phase string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the catalog, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := filter.State{}
			if cmd.Flags().Changed("phase") {
				c, err := filter.ParseCategory(phase)
				if err != nil {
					return err
				}
				st = st.WithCategory(c)
			} else {
				st = st.WithSearch(query)
			}
			return withSession(cmd, g, func(sess *app.Session) error {
				items := filter.Apply(sess.Store.Items(), st)
				return writeItems(cmd.OutOrStdout(), sess.Store, items)
			})
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "Search term (no matches prints everything)")
	cmd.Flags().StringVar(&phase, "phase", "", "Phase number, or all")
	cmd.MarkFlagsMutuallyExclusive("q", "phase")
	return cmd
}

func newShowCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one movie with its place in the chronology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, g, func(sess *app.Session) error {
				item, pos, err := sess.Store.Lookup(strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				return writeDetail(cmd.OutOrStdout(), item, pos)
			})
		},
	}
}

func newTimelineCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline",
		Short: "Print the full catalog in chronological order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, g, func(sess *app.Session) error {
				return writeItems(cmd.OutOrStdout(), sess.Store, sess.Store.Items())
			})
		},
	}
}

func newLinkCmd(g *globals) *cobra.Command {
	var (
		query string
		id    string
	)
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print a link that opens marquee on a search or movie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, g, func(sess *app.Session) error {
				loc, err := sess.Location("")
				if err != nil {
					return err
				}
				loc.SetSearch(filter.Normalize(query))
				link := loc.String()
				if id = strings.TrimSpace(id); id != "" {
					if _, _, err := sess.Store.Lookup(id); err != nil {
						return err
					}
					link = loc.ShareURL(id)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&query, "q", "", "Search term")
	cmd.Flags().StringVar(&id, "id", "", "Movie id to open")
	return cmd
}
