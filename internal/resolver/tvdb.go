package resolver

import (
	"context"
	"fmt"

	"github.com/vmunix/wdtvmd/internal/media"
	"github.com/vmunix/wdtvmd/internal/metadata"
	"github.com/vmunix/wdtvmd/pkg/tvdb"
)

// TVDBSource adapts TVDB responses to media records.
type TVDBSource struct {
	api metadata.TVDBClient
}

// NewTVDBSource creates a source backed by api, usually a cached
// metadata.TVDBService.
func NewTVDBSource(api metadata.TVDBClient) *TVDBSource {
	return &TVDBSource{api: api}
}

// SearchSeries implements SeriesSource.
func (s *TVDBSource) SearchSeries(ctx context.Context, name string) ([]media.Series, error) {
	results, err := s.api.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	series := make([]media.Series, 0, len(results))
	for _, r := range results {
		series = append(series, media.Series{ID: int64(r.ID), Name: r.Name, Year: r.Year})
	}
	return series, nil
}

// LoadEpisode implements SeriesSource. TVDB carries no episode cast.
func (s *TVDBSource) LoadEpisode(ctx context.Context, seriesID int64, season, _ int) (*media.Series, error) {
	details, err := s.api.GetSeries(ctx, int(seriesID))
	if err != nil {
		return nil, err
	}
	episodes, err := s.api.GetEpisodes(ctx, int(seriesID))
	if err != nil {
		return nil, fmt.Errorf("episodes: %w", err)
	}

	series := &media.Series{
		ID:        int64(details.ID),
		Name:      details.Name,
		Year:      details.Year,
		Genres:    details.Genres,
		Backdrops: details.Backgrounds(),
	}

	found := false
	sn := media.Season{Number: season}
	for _, ss := range details.Seasons {
		if ss.Number == season {
			sn.Banner = ss.Image
			found = true
			break
		}
	}
	for _, ep := range episodes {
		if ep.Season == season {
			sn.Episodes = append(sn.Episodes, tvdbEpisode(ep))
			found = true
		}
	}
	if found {
		series.Seasons = []media.Season{sn}
	}
	return series, nil
}

func tvdbEpisode(ep tvdb.Episode) media.Episode {
	return media.Episode{
		ID:       int64(ep.ID),
		Number:   ep.Episode,
		Name:     ep.Name,
		Overview: ep.Overview,
		AirDate:  ep.AirDate,
		Still:    ep.Image,
	}
}
