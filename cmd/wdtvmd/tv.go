package main

import (
	"github.com/spf13/cobra"
)

var tvCmd = &cobra.Command{
	Use:   "tv PATH...",
	Short: "Write descriptors for TV episodes",
	Long: `Write descriptors for TV episodes.

Files are expected as .../Series/Season N/file.ext or .../Series/file.ext,
with the episode given as S01E02, or as "Season 1" in the path plus an
episode number in the file name.

Examples:
  wdtvmd tv /media/tv
  wdtvmd tv --force "/media/tv/Breaking Bad/Season 01"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTVCmd,
}

func init() {
	rootCmd.AddCommand(tvCmd)
}

func runTVCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	return runLookups(ctx, a, args, a.resolver().LookupTVFile)
}
