package resolver

import (
	"context"
	"errors"
	"fmt"

	"github.com/vmunix/wdtvmd/internal/media"
	"github.com/vmunix/wdtvmd/internal/metadata"
	"github.com/vmunix/wdtvmd/internal/tmdb"
)

// TMDBSource adapts TMDB responses to media records. It serves both movie
// lookups and TV lookups.
type TMDBSource struct {
	api metadata.TMDBClient
}

// NewTMDBSource creates a source backed by api, usually a cached
// metadata.TMDBService.
func NewTMDBSource(api metadata.TMDBClient) *TMDBSource {
	return &TMDBSource{api: api}
}

// SearchSeries implements SeriesSource.
func (s *TMDBSource) SearchSeries(ctx context.Context, name string) ([]media.Series, error) {
	results, err := s.api.SearchTV(ctx, name)
	if err != nil {
		return nil, err
	}
	series := make([]media.Series, 0, len(results))
	for _, r := range results {
		series = append(series, media.Series{ID: r.ID, Name: r.Name, Year: yearOf(r.FirstAirDate)})
	}
	return series, nil
}

// LoadEpisode implements SeriesSource. A season unknown to TMDB leaves the
// series without seasons.
func (s *TMDBSource) LoadEpisode(ctx context.Context, seriesID int64, season, episode int) (*media.Series, error) {
	tv, err := s.api.GetTV(ctx, seriesID)
	if err != nil {
		return nil, err
	}
	series := &media.Series{
		ID:        tv.ID,
		Name:      tv.Name,
		Year:      yearOf(tv.FirstAirDate),
		Genres:    genreNames(tv.Genres),
		Backdrops: tmdb.BackdropURLs(tv.Images, tv.BackdropPath),
	}

	sn, err := s.api.GetSeason(ctx, seriesID, season)
	if errors.Is(err, tmdb.ErrNotFound) {
		return series, nil
	}
	if err != nil {
		return nil, fmt.Errorf("season %d: %w", season, err)
	}

	out := media.Season{Number: sn.SeasonNumber, Poster: tmdb.ImageURL(sn.PosterPath)}
	for _, ep := range sn.Episodes {
		e := media.Episode{
			ID:       ep.ID,
			Number:   ep.EpisodeNumber,
			Name:     ep.Name,
			Overview: ep.Overview,
			AirDate:  media.ParseDate(ep.AirDate),
			Still:    tmdb.ImageURL(ep.StillPath),
		}
		if e.Number == episode {
			credits, err := s.api.GetEpisodeCredits(ctx, seriesID, season, episode)
			switch {
			case err == nil:
				e.Cast = castNames(credits)
			case !errors.Is(err, tmdb.ErrNotFound):
				return nil, fmt.Errorf("episode credits: %w", err)
			}
		}
		out.Episodes = append(out.Episodes, e)
	}
	series.Seasons = []media.Season{out}
	return series, nil
}

// SearchMovies implements MovieSource.
func (s *TMDBSource) SearchMovies(ctx context.Context, name string, year int) ([]media.Movie, error) {
	results, err := s.api.SearchMovie(ctx, name, year)
	if err != nil {
		return nil, err
	}
	movies := make([]media.Movie, 0, len(results))
	for _, r := range results {
		movies = append(movies, media.Movie{ID: r.ID, Title: r.Title, ReleaseDate: media.ParseDate(r.ReleaseDate)})
	}
	return movies, nil
}

// Movie implements MovieSource.
func (s *TMDBSource) Movie(ctx context.Context, id int64) (*media.Movie, error) {
	m, err := s.api.GetMovie(ctx, id)
	if err != nil {
		return nil, err
	}
	return &media.Movie{
		ID:          m.ID,
		IMDBID:      m.IMDBID,
		Title:       m.Title,
		Overview:    m.Overview,
		ReleaseDate: media.ParseDate(m.ReleaseDate),
		Runtime:     m.Runtime,
		Cast:        castNames(&m.Credits),
		Genres:      genreNames(m.Genres),
		Poster:      tmdb.ImageURL(m.PosterPath),
		Backdrops:   tmdb.BackdropURLs(m.Images, m.BackdropPath),
	}, nil
}

func genreNames(genres []tmdb.Genre) []string {
	var names []string
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}

// castNames lists regular cast then guest stars, in billing order.
func castNames(c *tmdb.Credits) []string {
	var names []string
	for _, m := range c.Cast {
		names = append(names, m.Name)
	}
	for _, m := range c.GuestStars {
		names = append(names, m.Name)
	}
	return names
}

func yearOf(date string) int {
	t := media.ParseDate(date)
	if t.IsZero() {
		return 0
	}
	return t.Year()
}
