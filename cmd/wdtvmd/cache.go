package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmunix/wdtvmd/internal/metadata"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the metadata response cache",
}

var cachePruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove expired cache entries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cache, lock, err := openCache(cmd.Context(), cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer func() {
			_ = cache.Close()
			_ = lock.Unlock()
		}()

		n, err := cache.Prune(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d expired entries from %s\n", n, cfg.Cache.Path)
		return nil
	},
}

var cacheInvalidateCmd = &cobra.Command{
	Use:   "invalidate TVDB_ID...",
	Short: "Drop cached TVDB series and episode data",
	Long: `Drop cached TVDB series and episode data so the next run refetches it.

Use this after correcting a series on TheTVDB.

Example:
  wdtvmd cache invalidate 81189`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cache, lock, err := openCache(cmd.Context(), cfg.Cache.Path)
		if err != nil {
			return err
		}
		defer func() {
			_ = cache.Close()
			_ = lock.Unlock()
		}()

		svc := metadata.NewTVDBService(nil, cache, newLogger(cmd.ErrOrStderr(), cfg))
		return invalidateSeries(cmd.Context(), cmd.OutOrStdout(), svc, args)
	},
}

func init() {
	cacheCmd.AddCommand(cachePruneCmd)
	cacheCmd.AddCommand(cacheInvalidateCmd)
	rootCmd.AddCommand(cacheCmd)
}

// invalidateSeries drops cached data for each TVDB id. All ids are parsed
// before anything is deleted.
func invalidateSeries(ctx context.Context, w io.Writer, svc *metadata.TVDBService, args []string) error {
	ids := make([]int, len(args))
	for i, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid TVDB id %q", arg)
		}
		ids[i] = id
	}

	for _, id := range ids {
		if err := svc.InvalidateSeries(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(w, "Invalidated TVDB series %d\n", id)
	}
	return nil
}
