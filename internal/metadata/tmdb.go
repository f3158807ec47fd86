package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/vmunix/wdtvmd/internal/tmdb"
)

// TMDBClient is the subset of the TMDB client the service wraps.
type TMDBClient interface {
	SearchMovie(ctx context.Context, query string, year int) ([]tmdb.MovieResult, error)
	SearchTV(ctx context.Context, query string) ([]tmdb.TVResult, error)
	GetMovie(ctx context.Context, id int64) (*tmdb.Movie, error)
	GetTV(ctx context.Context, id int64) (*tmdb.TV, error)
	GetSeason(ctx context.Context, id int64, season int) (*tmdb.Season, error)
	GetEpisodeCredits(ctx context.Context, id int64, season, episode int) (*tmdb.Credits, error)
}

// TMDBService provides cached access to TMDB metadata.
type TMDBService struct {
	client TMDBClient
	cache  *Cache
	log    *slog.Logger
}

// NewTMDBService creates a new TMDB service. cache may be nil.
func NewTMDBService(client TMDBClient, cache *Cache, log *slog.Logger) *TMDBService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &TMDBService{
		client: client,
		cache:  cache,
		log:    log.With("component", "tmdb-cache"),
	}
}

// SearchMovie searches movies by title and optional year (cached).
func (s *TMDBService) SearchMovie(ctx context.Context, query string, year int) ([]tmdb.MovieResult, error) {
	key := "tmdb:search:movie:" + query + ":" + strconv.Itoa(year)
	results, err := cached(ctx, s.cache, s.log, key, searchTTL,
		func() ([]tmdb.MovieResult, error) { return s.client.SearchMovie(ctx, query, year) })
	if err != nil {
		return nil, fmt.Errorf("search movie: %w", err)
	}
	return results, nil
}

// SearchTV searches series by name (cached).
func (s *TMDBService) SearchTV(ctx context.Context, query string) ([]tmdb.TVResult, error) {
	results, err := cached(ctx, s.cache, s.log, "tmdb:search:tv:"+query, searchTTL,
		func() ([]tmdb.TVResult, error) { return s.client.SearchTV(ctx, query) })
	if err != nil {
		return nil, fmt.Errorf("search tv: %w", err)
	}
	return results, nil
}

// GetMovie fetches a movie with credits and images (cached).
func (s *TMDBService) GetMovie(ctx context.Context, id int64) (*tmdb.Movie, error) {
	movie, err := cached(ctx, s.cache, s.log, fmt.Sprintf("tmdb:movie:%d", id), seriesTTL,
		func() (*tmdb.Movie, error) { return s.client.GetMovie(ctx, id) })
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

// GetTV fetches series details (cached).
func (s *TMDBService) GetTV(ctx context.Context, id int64) (*tmdb.TV, error) {
	tv, err := cached(ctx, s.cache, s.log, fmt.Sprintf("tmdb:tv:%d", id), seriesTTL,
		func() (*tmdb.TV, error) { return s.client.GetTV(ctx, id) })
	if err != nil {
		return nil, fmt.Errorf("get tv: %w", err)
	}
	return tv, nil
}

// GetSeason fetches a season with its episodes (cached).
func (s *TMDBService) GetSeason(ctx context.Context, id int64, season int) (*tmdb.Season, error) {
	result, err := cached(ctx, s.cache, s.log, fmt.Sprintf("tmdb:tv:%d:season:%d", id, season), episodeTTL,
		func() (*tmdb.Season, error) { return s.client.GetSeason(ctx, id, season) })
	if err != nil {
		return nil, fmt.Errorf("get season: %w", err)
	}
	return result, nil
}

// GetEpisodeCredits fetches the cast of one episode (cached).
func (s *TMDBService) GetEpisodeCredits(ctx context.Context, id int64, season, episode int) (*tmdb.Credits, error) {
	key := fmt.Sprintf("tmdb:tv:%d:season:%d:episode:%d:credits", id, season, episode)
	credits, err := cached(ctx, s.cache, s.log, key, episodeTTL,
		func() (*tmdb.Credits, error) { return s.client.GetEpisodeCredits(ctx, id, season, episode) })
	if err != nil {
		return nil, fmt.Errorf("get episode credits: %w", err)
	}
	return credits, nil
}
