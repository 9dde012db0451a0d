package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the resolver cache",
	}
	cmd.AddCommand(c.newCacheStatsCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	return cmd
}

func (c *CLI) newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show resolver cache hit and size counters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			stats := c.app.CacheStats()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "spaces: %d entries, %d hits, %d misses\n",
				stats.Spaces.Entries, stats.Spaces.Hits, stats.Spaces.Misses)
			_, _ = fmt.Fprintf(out, "types:  %d entries, %d hits, %d misses\n",
				stats.Types.Entries, stats.Types.Hits, stats.Types.Misses)
		},
	}
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Drop all cached name resolutions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			c.app.ClearCache()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
		},
	}
}
