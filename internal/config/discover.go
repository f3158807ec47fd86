// internal/config/discover.go
package config

import (
	"os"
	"path/filepath"
)

const (
	configEnv     = "WDTVMD_CONFIG"
	configName    = ".wdtv"
	cacheDirName  = "wdtvmd"
	cacheFileName = "tmdb3.cache"
)

// DefaultPath returns the config file path: $WDTVMD_CONFIG if set,
// otherwise ~/.wdtv.
func DefaultPath() string {
	if p := os.Getenv(configEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configName
	}
	return filepath.Join(home, configName)
}

// DefaultCachePath returns the XDG-compliant response cache path.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return cacheFileName
	}
	return filepath.Join(dir, cacheDirName, cacheFileName)
}
