package resolver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vmunix/wdtvmd/internal/descriptor"
	"github.com/vmunix/wdtvmd/internal/media"
	"github.com/vmunix/wdtvmd/internal/naming"
)

// LookupTVFile resolves an episode file and writes its sidecars.
//
// Zero search results is not an error and yields OutcomeNotFound. Several
// results are accepted only when the first one's name equals the guessed
// series name exactly.
func (r *Resolver) LookupTVFile(ctx context.Context, path string) (Outcome, error) {
	name, err := naming.GuessSeriesName(path)
	if err != nil {
		return OutcomeFailed, err
	}
	seasonNum, episodeNum, err := naming.GuessEpisode(path)
	if err != nil {
		return OutcomeFailed, err
	}

	paths := descriptor.PathsFor(path)
	if !r.force && paths.Exist() {
		r.log.Debug("sidecars present, skipping", "path", path)
		return OutcomeSkipped, nil
	}

	results, err := r.series.SearchSeries(ctx, name)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("search series %q: %w", name, err)
	}
	if len(results) == 0 {
		r.log.Info("not found", "series", name, "path", path)
		return OutcomeNotFound, nil
	}
	if len(results) > 1 && results[0].Name != name {
		return OutcomeFailed, r.ambiguous(name, seriesNames(results))
	}

	rec, err := r.loadEpisode(ctx, r.series, results[0].ID, seasonNum, episodeNum)
	if err != nil {
		return OutcomeFailed, err
	}
	rec.Extra = r.enrich(ctx, name, seasonNum, episodeNum)

	r.log.Info("processing",
		"series", name,
		"season", seasonNum,
		"episode", episodeNum,
		"title", rec.Episode.Name,
		"enriched", rec.Extra != nil,
	)
	return r.writeTV(ctx, path, paths, rec)
}

func (r *Resolver) loadEpisode(ctx context.Context, src SeriesSource, id int64, seasonNum, episodeNum int) (*TVRecord, error) {
	series, err := src.LoadEpisode(ctx, id, seasonNum, episodeNum)
	if err != nil {
		return nil, fmt.Errorf("load series %d: %w", id, err)
	}
	season, err := series.Season(seasonNum)
	if err != nil {
		return nil, err
	}
	episode, err := season.Episode(episodeNum)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", series.Name, err)
	}
	return &TVRecord{Series: series, Season: season, Episode: episode}, nil
}

// enrich looks the episode up in the secondary source. Any failure or
// ambiguity yields nil.
func (r *Resolver) enrich(ctx context.Context, name string, seasonNum, episodeNum int) *Enrichment {
	if r.extra == nil {
		return nil
	}

	results, err := r.extra.SearchSeries(ctx, name)
	if err != nil {
		r.log.Debug("enrichment search failed", "series", name, "error", err)
		return nil
	}
	if len(results) == 0 || (len(results) > 1 && results[0].Name != name) {
		r.log.Debug("no enrichment match", "series", name, "results", len(results))
		return nil
	}

	rec, err := r.loadEpisode(ctx, r.extra, results[0].ID, seasonNum, episodeNum)
	if err != nil {
		r.log.Debug("enrichment lookup failed", "series", name, "error", err)
		return nil
	}
	return &Enrichment{Series: rec.Series, Season: rec.Season, Episode: rec.Episode}
}

// writeTV writes poster, thumbnail and descriptor in that order. Image
// failures are logged; only the descriptor failing fails the file.
func (r *Resolver) writeTV(ctx context.Context, path string, paths descriptor.Paths, rec *TVRecord) (Outcome, error) {
	if err := r.writer.WriteSeasonPoster(ctx, filepath.Dir(path), rec.Poster()); err != nil {
		r.log.Warn("season poster not written", "path", paths.Poster, "error", err)
	}
	if err := r.writer.WriteThumb(ctx, paths.Thumb, rec.Thumb()); err != nil {
		r.log.Warn("thumbnail not written", "path", paths.Thumb, "error", err)
	}

	details := descriptor.NewTVDetails(rec.Series.Name, rec.Season.Number, rec.Episode,
		rec.Genres(), rec.Cast(), rec.Backdrops())
	if err := r.writer.WriteTVXML(paths.XML, details); err != nil {
		return OutcomeFailed, fmt.Errorf("write descriptor: %w", err)
	}
	return OutcomeProcessed, nil
}

func seriesNames(results []media.Series) []string {
	names := make([]string, len(results))
	for i, s := range results {
		names[i] = s.Name
	}
	return names
}
