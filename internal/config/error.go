// internal/config/error.go
package config

import (
	"fmt"
	"strings"
)

// ConfigError aggregates configuration errors.
type ConfigError struct {
	Path    string   // Config file path
	Missing []string // Unresolved environment variables
	Errors  []string // Validation errors
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 0 && len(e.Errors) == 0 {
		return ""
	}

	parts := []string{e.Path + ":"}

	if len(e.Missing) > 0 {
		parts = append(parts,
			fmt.Sprintf("missing environment variables: %s", strings.Join(e.Missing, ", ")),
			fmt.Sprintf("  export them or replace the ${...} references in %s", e.Path))
	}

	if len(e.Errors) > 0 {
		parts = append(parts, "validation failed:")
		for _, err := range e.Errors {
			parts = append(parts, fmt.Sprintf("  - %s", err))
		}
		if e.mentionsKey() {
			parts = append(parts, "[api] key takes a TMDB v3 API key (or pass --api-key); [tvdb] key is optional")
		}
	}

	return strings.Join(parts, "\n")
}

func (e *ConfigError) mentionsKey() bool {
	for _, err := range e.Errors {
		if strings.HasPrefix(err, "api.key") || strings.HasPrefix(err, "tvdb.key") {
			return true
		}
	}
	return false
}

// HasErrors returns true if there are any errors.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}
