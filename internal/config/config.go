// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// ErrNoAPIKey is returned when no TMDB API key is configured or supplied.
var ErrNoAPIKey = errors.New("an API key is required: pass --api-key or set [api] key")

// Config is the root configuration structure.
type Config struct {
	API   APIConfig   `toml:"api"`
	TVDB  TVDBConfig  `toml:"tvdb"`
	Cache CacheConfig `toml:"cache"`
	Log   LogConfig   `toml:"log"`
}

// APIConfig configures TMDB, the movie source and TV enrichment source.
type APIConfig struct {
	Key      string `toml:"key"`
	Language string `toml:"language,omitempty"`
}

// TVDBConfig enables TVDB as the primary TV source when Key is set.
type TVDBConfig struct {
	Key string `toml:"key,omitempty"`
}

type CacheConfig struct {
	Path string        `toml:"path,omitempty"`
	TTL  time.Duration `toml:"ttl,omitempty"` // overrides per-kind TTLs when set
}

type LogConfig struct {
	Level string `toml:"level,omitempty"`
}

// Load reads and parses the configuration file.
// A missing file is reported with an error wrapping fs.ErrNotExist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}
	return &cfg, nil
}

// Init loads the config at path, applies an explicit apiKey and makes sure
// a key is available. The key is written back to the file when it was given
// explicitly or when the file did not exist yet.
func Init(path, apiKey string) (*Config, error) {
	cfg, err := Load(path)
	created := errors.Is(err, fs.ErrNotExist)
	switch {
	case created:
		cfg = Default()
	case err != nil:
		return nil, err
	}

	if apiKey != "" {
		cfg.API.Key = apiKey
	}
	if cfg.API.Key == "" {
		return nil, ErrNoAPIKey
	}

	if apiKey != "" || created {
		if err := persistAPIKey(path, cfg.API.Key); err != nil {
			return nil, fmt.Errorf("saving config: %w", err)
		}
	}
	return cfg, nil
}

// persistAPIKey stores key in the file at path, keeping every other value
// as written (unsubstituted).
func persistAPIKey(path, key string) error {
	var raw Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	raw.API.Key = key
	return raw.Write(path)
}

// Default returns a configuration with defaults applied and no keys.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Cache.Path == "" {
		c.Cache.Path = DefaultCachePath()
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces environment references and returns the names
// (or required-variable messages) that could not be resolved. Unresolved
// references are left unchanged.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case "-":
			if value == "" {
				return arg
			}
			return value
		case "?":
			if value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, strings.TrimSpace(arg)))
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	})
	return out, missing
}
