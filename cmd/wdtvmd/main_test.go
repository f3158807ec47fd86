package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/wdtvmd/internal/config"
	"github.com/vmunix/wdtvmd/internal/metadata"
	"github.com/vmunix/wdtvmd/internal/resolver"
	"github.com/vmunix/wdtvmd/internal/walker"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitFailures, exitCode(errFilesFailed))
	assert.Equal(t, exitFailures, exitCode(fmt.Errorf("tv: %w", errFilesFailed)))
	assert.Equal(t, exitFatal, exitCode(config.ErrNoAPIKey))
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "****"},
		{"abcd", "****"},
		{"0123456789abcdef", "****cdef"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, maskKey(tt.in), "maskKey(%q)", tt.in)
	}
}

func TestShowConfig_MasksKeys(t *testing.T) {
	cfg := config.Default()
	cfg.API.Key = "secret-tmdb-key-1234"
	cfg.TVDB.Key = "secret-tvdb-key-5678"

	var buf bytes.Buffer
	require.NoError(t, showConfig(&buf, filepath.Join(t.TempDir(), "missing.toml"), cfg))

	out := buf.String()
	assert.Contains(t, out, "not found, showing defaults")
	assert.Contains(t, out, "****1234")
	assert.Contains(t, out, "****5678")
	assert.NotContains(t, out, "secret-tmdb")
	assert.NotContains(t, out, "secret-tvdb")
	assert.Equal(t, "secret-tmdb-key-1234", cfg.API.Key, "caller's config must not be modified")
}

func TestRenderFailures_Plain(t *testing.T) {
	failures := []walker.Failure{
		{Path: "/tv/Show/S01E01.mkv", Err: errors.New("search: timeout")},
		{Path: "/tv/Show/S01E02.mkv", Err: errors.New("write descriptor: disk full")},
	}

	var buf bytes.Buffer
	out := renderFailures(&buf, failures)

	assert.Equal(t, "2 file(s) failed:\n"+
		"  /tv/Show/S01E01.mkv: search: timeout\n"+
		"  /tv/Show/S01E02.mkv: write descriptor: disk full\n", out)
	assert.Empty(t, renderFailures(&buf, nil))
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"File", "Error"}, [][]string{{"a.mkv", "boom"}, {"b.mkv"}})

	assert.Contains(t, out, "File")
	assert.NotContains(t, out, "FILE", "headers keep their case")
	assert.Contains(t, out, "a.mkv")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "b.mkv")
	assert.Empty(t, renderTable(nil, nil))
}

func TestTally(t *testing.T) {
	var counts tally
	for _, o := range []resolver.Outcome{
		resolver.OutcomeProcessed,
		resolver.OutcomeProcessed,
		resolver.OutcomeSkipped,
		resolver.OutcomeNotFound,
		resolver.OutcomeFailed,
	} {
		counts.record(o)
	}

	assert.Equal(t, int64(2), counts.processed.Load())
	assert.Equal(t, int64(1), counts.skipped.Load())
	assert.Equal(t, int64(1), counts.notFound.Load())
	assert.Equal(t, int64(1), counts.failed.Load())
}

func testApp() *app {
	return &app{cfg: config.Default(), log: slog.New(slog.DiscardHandler), out: io.Discard}
}

func writeMedia(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
}

func TestRunLookups(t *testing.T) {
	dir := t.TempDir()
	writeMedia(t, dir, "Show/Season 1/S01E01.mkv", "Show/Season 1/S01E02.mkv", "Show/notes.txt")

	var (
		mu   sync.Mutex
		seen []string
	)
	lookup := func(_ context.Context, path string) (resolver.Outcome, error) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, filepath.Base(path))
		return resolver.OutcomeProcessed, nil
	}

	require.NoError(t, runLookups(context.Background(), testApp(), []string{dir}, lookup))
	assert.ElementsMatch(t, []string{"S01E01.mkv", "S01E02.mkv"}, seen)
}

func TestRunLookups_FailuresReported(t *testing.T) {
	dir := t.TempDir()
	writeMedia(t, dir, "a.mkv", "b.mkv")

	lookup := func(_ context.Context, path string) (resolver.Outcome, error) {
		if strings.HasSuffix(path, "a.mkv") {
			return resolver.OutcomeFailed, errors.New("boom")
		}
		return resolver.OutcomeProcessed, nil
	}

	err := runLookups(context.Background(), testApp(), []string{dir}, lookup)
	assert.ErrorIs(t, err, errFilesFailed)
	assert.Equal(t, exitFailures, exitCode(err))
}

func TestRunLookups_Interrupted(t *testing.T) {
	dir := t.TempDir()
	writeMedia(t, dir, "a.mkv")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runLookups(ctx, testApp(), []string{dir}, func(context.Context, string) (resolver.Outcome, error) {
		return resolver.OutcomeProcessed, nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, exitFatal, exitCode(err))
}

func TestRunLookups_InterruptedReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeMedia(t, dir, "a.mkv", "b.mkv")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	a := testApp()
	a.out = &out

	err := runLookups(ctx, a, []string{dir}, func(_ context.Context, path string) (resolver.Outcome, error) {
		if strings.HasSuffix(path, "a.mkv") {
			cancel()
			return resolver.OutcomeFailed, errors.New("disk full")
		}
		return resolver.OutcomeProcessed, nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, exitFatal, exitCode(err))
	assert.Contains(t, out.String(), "1 file(s) failed:")
	assert.Contains(t, out.String(), filepath.Join(dir, "a.mkv")+": disk full")
	assert.NotContains(t, out.String(), "b.mkv", "only failed files are reported")
}

func TestOpenCache_Exclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wdtvmd", "tmdb3.cache")
	ctx := context.Background()

	cache, lock, err := openCache(ctx, path)
	require.NoError(t, err)
	defer func() {
		_ = cache.Close()
		_ = lock.Unlock()
	}()

	_, _, err = openCache(ctx, path)
	assert.ErrorContains(t, err, "in use")
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	old := configPath
	t.Cleanup(func() { configPath = old })
	configPath = filepath.Join(t.TempDir(), "nope.toml")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestInvalidateSeries(t *testing.T) {
	ctx := context.Background()
	cache, lock, err := openCache(ctx, filepath.Join(t.TempDir(), "tmdb3.cache"))
	require.NoError(t, err)
	defer func() {
		_ = cache.Close()
		_ = lock.Unlock()
	}()

	for _, key := range []string{"tvdb:series:81189", "tvdb:episodes:81189", "tvdb:series:5"} {
		require.NoError(t, cache.Set(ctx, key, []byte(`{}`), time.Hour))
	}

	svc := metadata.NewTVDBService(nil, cache, nil)
	var out bytes.Buffer
	require.NoError(t, invalidateSeries(ctx, &out, svc, []string{"81189"}))

	_, ok := cache.Get(ctx, "tvdb:series:81189")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "tvdb:episodes:81189")
	assert.False(t, ok)
	_, ok = cache.Get(ctx, "tvdb:series:5")
	assert.True(t, ok, "other series stay cached")
	assert.Equal(t, "Invalidated TVDB series 81189\n", out.String())
}

func TestInvalidateSeries_BadID(t *testing.T) {
	ctx := context.Background()
	cache, lock, err := openCache(ctx, filepath.Join(t.TempDir(), "tmdb3.cache"))
	require.NoError(t, err)
	defer func() {
		_ = cache.Close()
		_ = lock.Unlock()
	}()
	require.NoError(t, cache.Set(ctx, "tvdb:series:1", []byte(`{}`), time.Hour))

	svc := metadata.NewTVDBService(nil, cache, nil)
	err = invalidateSeries(ctx, io.Discard, svc, []string{"1", "breaking-bad"})
	assert.ErrorContains(t, err, `invalid TVDB id "breaking-bad"`)

	_, ok := cache.Get(ctx, "tvdb:series:1")
	assert.True(t, ok, "nothing is deleted when an id is invalid")
}
