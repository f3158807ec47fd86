// Package resolver turns a media file path into exactly one metadata record
// and hands it to the descriptor writer.
package resolver

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

import (
	"context"
	"log/slog"

	"github.com/vmunix/wdtvmd/internal/descriptor"
	"github.com/vmunix/wdtvmd/internal/media"
)

// Outcome describes what a lookup did with a file.
type Outcome int

const (
	OutcomeFailed    Outcome = iota // lookup returned an error
	OutcomeProcessed                // descriptor written
	OutcomeSkipped                  // sidecars already present
	OutcomeNotFound                 // search returned nothing
)

func (o Outcome) String() string {
	switch o {
	case OutcomeProcessed:
		return "processed"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNotFound:
		return "not found"
	default:
		return "failed"
	}
}

// SeriesSource provides TV metadata from one service.
type SeriesSource interface {
	// SearchSeries returns series matching name in service rank order.
	// Only ID, Name and Year are set.
	SearchSeries(ctx context.Context, name string) ([]media.Series, error)
	// LoadEpisode returns series details with the requested season and its
	// episodes. The requested episode carries cast when the service has it.
	LoadEpisode(ctx context.Context, seriesID int64, season, episode int) (*media.Series, error)
}

// MovieSource provides movie metadata.
type MovieSource interface {
	// SearchMovies returns movies matching name, restricted to year when
	// year is non-zero. Only ID, Title and ReleaseDate are set.
	SearchMovies(ctx context.Context, name string, year int) ([]media.Movie, error)
	Movie(ctx context.Context, id int64) (*media.Movie, error)
}

// Writer writes sidecar files.
type Writer interface {
	WriteSeasonPoster(ctx context.Context, dir, url string) error
	WriteThumb(ctx context.Context, target, url string) error
	WriteTVXML(target string, d descriptor.TVDetails) error
	WriteMovieXML(target string, d descriptor.MovieDetails) error
}

// Resolver holds everything a lookup needs. It is safe for concurrent use
// when its sources and writer are.
type Resolver struct {
	series SeriesSource
	extra  SeriesSource
	movies MovieSource
	writer Writer
	force  bool
	log    *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEnrichment sets a secondary TV source used for cast, genre and
// artwork. Failures of this source never fail a lookup.
func WithEnrichment(src SeriesSource) Option {
	return func(r *Resolver) {
		r.extra = src
	}
}

// WithForce rewrites descriptors even when sidecars already exist.
func WithForce(force bool) Option {
	return func(r *Resolver) {
		r.force = force
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		r.log = l
	}
}

// New creates a Resolver. series or movies may be nil when only the other
// kind of lookup is used.
func New(series SeriesSource, movies MovieSource, writer Writer, opts ...Option) *Resolver {
	r := &Resolver{
		series: series,
		movies: movies,
		writer: writer,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With("component", "resolver")
	return r
}
