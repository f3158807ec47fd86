package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/wdtvmd/internal/config"
)

var version = "dev"

// Process exit codes.
const (
	exitOK       = 0
	exitFailures = 1 // some files could not be processed
	exitFatal    = 2 // the run could not start or was interrupted
)

// errFilesFailed signals that the run completed with per-file failures,
// which have already been reported.
var errFilesFailed = errors.New("some files failed")

var (
	apiKey     string
	configPath string
	force      bool
	workers    int
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "wdtvmd",
	Short: "Generate WD TV metadata sidecars for a media library",
	Long: `wdtvmd - metadata sidecar generator for WD TV media players

Scans media directories, identifies episodes and movies from their
file names, looks them up on TheTVDB and TMDB, and writes X.xml,
X.metathumb and folder.jpg next to each media file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitCode(rootCmd.ExecuteContext(ctx))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errFilesFailed):
		return exitFailures
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		return exitFatal
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "TMDB API key (saved to the config file)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Config file")
	rootCmd.PersistentFlags().BoolVarP(&force, "force", "f", false, "Rewrite descriptors even if sidecars exist")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "j", 1, "Number of files processed in parallel")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("wdtvmd {{.Version}}\n")
}
