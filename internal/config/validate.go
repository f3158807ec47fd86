// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if c.Cache.TTL < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl: must not be negative, got %s", c.Cache.TTL))
	}
	if strings.TrimSpace(c.API.Key) != c.API.Key {
		errs = append(errs, "api.key: must not contain surrounding whitespace")
	}
	if strings.TrimSpace(c.TVDB.Key) != c.TVDB.Key {
		errs = append(errs, "tvdb.key: must not contain surrounding whitespace")
	}

	return errs
}
