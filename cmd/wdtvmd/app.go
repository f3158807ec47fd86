package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"github.com/vmunix/wdtvmd/internal/config"
	"github.com/vmunix/wdtvmd/internal/descriptor"
	"github.com/vmunix/wdtvmd/internal/metadata"
	"github.com/vmunix/wdtvmd/internal/resolver"
	"github.com/vmunix/wdtvmd/internal/tmdb"
	"github.com/vmunix/wdtvmd/pkg/tvdb"
)

// app holds the per-run dependencies shared by the commands.
type app struct {
	cfg   *config.Config
	log   *slog.Logger
	cache *metadata.Cache
	lock  *flock.Flock
	out   io.Writer // failure report
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	})).With("run_id", uuid.NewString())
}

// loadConfig reads the config for commands that need no API key.
// A missing file yields the defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// openCache locks and opens the response cache. Only one run may use a
// cache file at a time.
func openCache(ctx context.Context, path string) (*metadata.Cache, *flock.Flock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create cache dir: %w", err)
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, nil, fmt.Errorf("cache %s is in use by another wdtvmd run", path)
	}

	cache, err := metadata.Open(ctx, path)
	if err != nil {
		_ = lock.Unlock()
		return nil, nil, err
	}
	return cache, lock, nil
}

// setup initializes config, logging and the cache for a lookup command.
func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Init(configPath, apiKey)
	if err != nil {
		return nil, err
	}
	log := newLogger(os.Stdout, cfg)

	cache, lock, err := openCache(ctx, cfg.Cache.Path)
	if err != nil {
		return nil, err
	}
	cache.SetTTL(cfg.Cache.TTL)

	log.Debug("initialized", "config", configPath, "cache", cfg.Cache.Path, "tvdb", cfg.TVDB.Key != "")
	return &app{cfg: cfg, log: log, cache: cache, lock: lock, out: os.Stdout}, nil
}

func (a *app) Close() {
	if err := a.cache.Close(); err != nil {
		a.log.Warn("failed to close cache", "error", err)
	}
	if err := a.lock.Unlock(); err != nil {
		a.log.Warn("failed to release cache lock", "error", err)
	}
}

// resolver wires the metadata sources. TVDB is the primary TV source when
// a key is configured, with TMDB as enrichment; otherwise TMDB serves TV on
// its own.
func (a *app) resolver() *resolver.Resolver {
	var tmdbOpts []tmdb.Option
	if a.cfg.API.Language != "" {
		tmdbOpts = append(tmdbOpts, tmdb.WithLanguage(a.cfg.API.Language))
	}
	tmdbSource := resolver.NewTMDBSource(
		metadata.NewTMDBService(tmdb.NewClient(a.cfg.API.Key, tmdbOpts...), a.cache, a.log))

	opts := []resolver.Option{
		resolver.WithForce(force),
		resolver.WithLogger(a.log),
	}

	var series resolver.SeriesSource = tmdbSource
	if a.cfg.TVDB.Key != "" {
		client := tvdb.New(a.cfg.TVDB.Key, tvdb.WithLogger(a.log))
		series = resolver.NewTVDBSource(metadata.NewTVDBService(client, a.cache, a.log))
		opts = append(opts, resolver.WithEnrichment(tmdbSource))
	}

	writer := descriptor.NewWriter(descriptor.WithLogger(a.log))
	return resolver.New(series, tmdbSource, writer, opts...)
}
