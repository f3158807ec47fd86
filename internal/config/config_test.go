package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".wdtv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Valid(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")
	path := writeConfig(t, `
[api]
key = "tmdb-key"
language = "de-DE"

[tvdb]
key = "tvdb-key"

[cache]
ttl = "48h"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tmdb-key", cfg.API.Key)
	assert.Equal(t, "de-DE", cfg.API.Language)
	assert.Equal(t, "tvdb-key", cfg.TVDB.Key)
	assert.Equal(t, 48*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "/xdg/cache/wdtvmd/tmdb3.cache", cfg.Cache.Path, "default cache path")
	assert.Equal(t, "info", cfg.Log.Level, "default log level")
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("WDTVMD_TEST_TMDB_KEY", "from-env")
	path := writeConfig(t, `
[api]
key = "${WDTVMD_TEST_TMDB_KEY}"

[log]
level = "${WDTVMD_TEST_LOG_LEVEL:-debug}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.API.Key)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, `
[api]
key = "${WDTVMD_TEST_NEVER_SET_KEY}"
`)

	_, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"WDTVMD_TEST_NEVER_SET_KEY"}, cfgErr.Missing)
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "loud"
`)

	_, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.NotEmpty(t, cfgErr.Errors)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[api\nkey = ")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestInit_NoAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wdtv")

	_, err := Init(path, "")
	assert.ErrorIs(t, err, ErrNoAPIKey)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "nothing written without a key")
}

func TestInit_ExistingFileWithoutKey(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"warn\"\n")

	_, err := Init(path, "")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestInit_ExplicitKeyCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wdtv")

	cfg, err := Init(path, "new-key")
	require.NoError(t, err)
	assert.Equal(t, "new-key", cfg.API.Key)

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "new-key", reloaded.API.Key)
}

func TestInit_StoredKey(t *testing.T) {
	path := writeConfig(t, "[api]\nkey = \"stored\"\n")

	cfg, err := Init(path, "")
	require.NoError(t, err)
	assert.Equal(t, "stored", cfg.API.Key)
}

func TestInit_ExplicitKeyKeepsEnvReferences(t *testing.T) {
	t.Setenv("WDTVMD_TEST_TVDB", "secret-tvdb")
	path := writeConfig(t, "[api]\nkey = \"old\"\n\n[tvdb]\nkey = \"${WDTVMD_TEST_TVDB}\"\n")

	cfg, err := Init(path, "replacement")
	require.NoError(t, err)
	assert.Equal(t, "replacement", cfg.API.Key)
	assert.Equal(t, "secret-tvdb", cfg.TVDB.Key)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "replacement")
	assert.Contains(t, string(content), "${WDTVMD_TEST_TVDB}")
	assert.NotContains(t, string(content), "secret-tvdb")
}

func TestDefault(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	cfg := Default()
	assert.Empty(t, cfg.API.Key)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "/xdg/cache/wdtvmd/tmdb3.cache", cfg.Cache.Path)
}
