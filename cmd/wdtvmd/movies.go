package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vmunix/wdtvmd/internal/resolver"
)

var moviesCmd = &cobra.Command{
	Use:   "movies PATH...",
	Short: "Write descriptors for movies",
	Long: `Write descriptors for movies.

The title and year are taken from file names such as "Heat (1995).mkv".
Use --hint to name the movie explicitly when the file name is not usable.

Examples:
  wdtvmd movies /media/movies
  wdtvmd movies --hint "Alien (1979)" /media/movies/alien_dc.mkv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMoviesCmd,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	moviesCmd.Flags().String("hint", "", `Movie title, optionally with "(year)"`)
}

func runMoviesCmd(cmd *cobra.Command, args []string) error {
	hint, _ := cmd.Flags().GetString("hint")

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	r := a.resolver()
	return runLookups(ctx, a, args, func(ctx context.Context, path string) (resolver.Outcome, error) {
		return r.LookupMovieFile(ctx, path, hint)
	})
}
