// internal/config/write.go
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Write serializes the config to TOML and writes it to the specified path.
// The file holds API keys and is only readable by its owner.
func (c *Config) Write(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
