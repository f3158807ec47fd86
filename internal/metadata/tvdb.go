package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vmunix/wdtvmd/pkg/tvdb"
)

const (
	// Cache TTLs
	seriesTTL  = 7 * 24 * time.Hour // 7 days
	episodeTTL = 24 * time.Hour     // 24 hours
	searchTTL  = time.Hour          // 1 hour
)

// Cache key prefixes
const (
	keyPrefixSearch   = "tvdb:search:"
	keyPrefixSeries   = "tvdb:series:"
	keyPrefixEpisodes = "tvdb:episodes:"
)

// TVDBClient is the subset of the TVDB client the service wraps.
type TVDBClient interface {
	Search(ctx context.Context, query string) ([]tvdb.SearchResult, error)
	GetSeries(ctx context.Context, id int) (*tvdb.Series, error)
	GetEpisodes(ctx context.Context, seriesID int) ([]tvdb.Episode, error)
}

// TVDBService provides cached access to TVDB metadata.
type TVDBService struct {
	client TVDBClient
	cache  *Cache
	log    *slog.Logger
}

// NewTVDBService creates a new TVDB service. cache may be nil.
func NewTVDBService(client TVDBClient, cache *Cache, log *slog.Logger) *TVDBService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &TVDBService{
		client: client,
		cache:  cache,
		log:    log.With("component", "tvdb-cache"),
	}
}

// Search searches for series by name (cached).
func (s *TVDBService) Search(ctx context.Context, query string) ([]tvdb.SearchResult, error) {
	results, err := cached(ctx, s.cache, s.log, keyPrefixSearch+query, searchTTL,
		func() ([]tvdb.SearchResult, error) { return s.client.Search(ctx, query) })
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}

// GetSeries fetches the extended series record by TVDB ID (cached).
func (s *TVDBService) GetSeries(ctx context.Context, tvdbID int) (*tvdb.Series, error) {
	series, err := cached(ctx, s.cache, s.log, fmt.Sprintf("%s%d", keyPrefixSeries, tvdbID), seriesTTL,
		func() (*tvdb.Series, error) { return s.client.GetSeries(ctx, tvdbID) })
	if err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}
	return series, nil
}

// GetEpisodes fetches all episodes for a series (cached).
func (s *TVDBService) GetEpisodes(ctx context.Context, tvdbID int) ([]tvdb.Episode, error) {
	episodes, err := cached(ctx, s.cache, s.log, fmt.Sprintf("%s%d", keyPrefixEpisodes, tvdbID), episodeTTL,
		func() ([]tvdb.Episode, error) { return s.client.GetEpisodes(ctx, tvdbID) })
	if err != nil {
		return nil, fmt.Errorf("get episodes: %w", err)
	}
	return episodes, nil
}

// InvalidateSeries removes cached data for a series.
func (s *TVDBService) InvalidateSeries(ctx context.Context, tvdbID int) error {
	var errs []error
	for _, prefix := range []string{keyPrefixSeries, keyPrefixEpisodes} {
		if err := s.cache.Delete(ctx, fmt.Sprintf("%s%d", prefix, tvdbID)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalidate series %d: %v", tvdbID, errs)
	}
	s.log.Debug("invalidated series cache", "tvdb_id", tvdbID)
	return nil
}
