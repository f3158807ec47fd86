package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vmunix/wdtvmd/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration with keys masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return showConfig(cmd.OutOrStdout(), configPath, cfg)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func showConfig(w io.Writer, path string, cfg *config.Config) error {
	masked := *cfg
	masked.API.Key = maskKey(cfg.API.Key)
	masked.TVDB.Key = maskKey(cfg.TVDB.Key)

	source := path
	if _, err := os.Stat(path); err != nil {
		source = path + " (not found, showing defaults)"
	}
	fmt.Fprintf(w, "# %s\n", source)
	return toml.NewEncoder(w).Encode(masked)
}

// maskKey keeps the last four characters of a secret.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
