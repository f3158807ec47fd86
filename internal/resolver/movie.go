package resolver

import (
	"context"
	"fmt"

	"github.com/vmunix/wdtvmd/internal/descriptor"
	"github.com/vmunix/wdtvmd/internal/media"
	"github.com/vmunix/wdtvmd/internal/naming"
)

// LookupMovieFile resolves a movie file and writes its thumbnail and
// descriptor. A non-empty hint replaces the name and year guessed from the
// filename, and several results are then narrowed to exact title matches.
func (r *Resolver) LookupMovieFile(ctx context.Context, path, hint string) (Outcome, error) {
	var (
		name string
		year int
	)
	if hint != "" {
		name, year, _ = naming.ProcessHint(hint)
	} else {
		name = naming.GuessName(path)
		year, _ = naming.GuessYear(path)
	}

	paths := descriptor.PathsFor(path)
	if !r.force && paths.Exist() {
		r.log.Debug("sidecars present, skipping", "path", path)
		return OutcomeSkipped, nil
	}

	results, err := r.movies.SearchMovies(ctx, name, year)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("search movie %q: %w", name, err)
	}
	if len(results) == 0 {
		r.log.Info("not found", "movie", name, "year", year, "path", path)
		return OutcomeNotFound, nil
	}

	if len(results) > 1 {
		candidates := movieLabels(results)
		switch {
		case hint != "":
			results = exactTitles(results, name)
			if len(results) == 0 {
				return OutcomeFailed, r.ambiguous(name, candidates)
			}
		case results[0].Title != name:
			return OutcomeFailed, r.ambiguous(name, candidates)
		}
	}

	movie, err := r.movies.Movie(ctx, results[0].ID)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("load movie %d: %w", results[0].ID, err)
	}

	r.log.Info("processing", "movie", movie.Label(), "path", path)

	if err := r.writer.WriteThumb(ctx, paths.Thumb, movie.Poster); err != nil {
		r.log.Warn("thumbnail not written", "path", paths.Thumb, "error", err)
	}
	if err := r.writer.WriteMovieXML(paths.XML, descriptor.NewMovieDetails(movie)); err != nil {
		return OutcomeFailed, fmt.Errorf("write descriptor: %w", err)
	}
	return OutcomeProcessed, nil
}

func (r *Resolver) ambiguous(name string, candidates []string) error {
	amb := newAmbiguousResultError(name, candidates)
	r.log.Warn("ambiguous result", "guess", name, "candidates", amb.Candidates, "suggestion", amb.Suggestion)
	return amb
}

func exactTitles(results []media.Movie, title string) []media.Movie {
	var matched []media.Movie
	for _, m := range results {
		if m.Title == title {
			matched = append(matched, m)
		}
	}
	return matched
}

// movieLabels formats candidates as "Title (Year)", or just the title when
// the release date is unknown.
func movieLabels(results []media.Movie) []string {
	labels := make([]string, len(results))
	for i := range results {
		labels[i] = results[i].Label()
	}
	return labels
}
