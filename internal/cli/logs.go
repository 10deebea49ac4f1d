package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/config"
	"github.com/five82/marquee/internal/logging"
)

const defaultLogLines = 50

func newLogsCmd(g *globals) *cobra.Command {
	var (
		lines int
		level string
	)
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the most recent log records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			floor, err := logging.ParseLevel(level)
			if err != nil {
				return err
			}
			cfg, err := config.Load(g.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			records, err := logging.Tail(cfg.LogPath(), lines, floor)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range records {
				if _, err := fmt.Fprintln(out, r); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", defaultLogLines, "Number of records to print")
	cmd.Flags().StringVar(&level, "level", "debug", "Minimum level (debug, info, warn, error)")
	return cmd
}
