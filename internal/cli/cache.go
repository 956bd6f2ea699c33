package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/showdiff/internal/cache"
	"github.com/dshills/showdiff/internal/config"
)

var (
	flagExpiredOnly bool
	flagCacheJSON   bool
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or empty the store of rendered show-diff blocks",
	Long: `Rendered blocks are cached by diff text, render options and redaction
policy, so an unchanged range is not re-rendered. Entries older than
cache.ttlSeconds are ignored and removed when next read.`,
}

// openRenderCache opens the configured cache directory even when caching is
// disabled, so stale entries can still be inspected and removed.
func openRenderCache() (*cache.Cache, config.Config, error) {
	cfg, err := config.Load(nil)
	if err != nil {
		return nil, cfg, err
	}
	c, err := cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		return nil, cfg, fmt.Errorf("opening render cache: %w", err)
	}
	return c, cfg, nil
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached block renders",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := openRenderCache()
		if err != nil {
			return err
		}
		remove, what := c.Clear, "rendered blocks"
		if flagExpiredOnly {
			remove, what = c.Prune, "expired rendered blocks"
		}
		n, err := remove()
		if err != nil {
			return fmt.Errorf("clearing render cache: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d %s from %s\n", n, what, c.Dir())
		return nil
	},
}

var cacheShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show where block renders are cached and how many are stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cfg, err := openRenderCache()
		if err != nil {
			return err
		}
		stats, err := c.GetStats()
		if err != nil {
			return fmt.Errorf("reading render cache: %w", err)
		}
		out := cmd.OutOrStdout()
		if flagCacheJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Enabled bool `json:"enabled"`
				cache.Stats
			}{cfg.Cache.Enabled, stats})
		}

		state := "enabled"
		if !cfg.Cache.Enabled {
			state = "disabled (entries below are not used)"
		}
		ttl := "never"
		if stats.TTLSeconds > 0 {
			ttl = (time.Duration(stats.TTLSeconds) * time.Second).String()
		}
		fmt.Fprintf(out, "Render cache: %s\n", state)
		fmt.Fprintf(out, "Directory:    %s\n", stats.Dir)
		fmt.Fprintf(out, "Blocks:       %d (%d expired)\n", stats.Entries, stats.Expired)
		fmt.Fprintf(out, "Size:         %d bytes\n", stats.TotalBytes)
		fmt.Fprintf(out, "Expires:      %s\n", ttl)
		return nil
	},
}

func init() {
	cacheClearCmd.Flags().BoolVar(&flagExpiredOnly, "expired", false, "Only remove renders older than cache.ttlSeconds")
	cacheShowCmd.Flags().BoolVar(&flagCacheJSON, "json", false, "Print statistics as JSON")
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheShowCmd)
}
