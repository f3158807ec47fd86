// Package media defines the canonical metadata records written to
// descriptors, independent of the service they were fetched from.
package media

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrSeasonNotFound indicates the series has no season with the requested number.
	ErrSeasonNotFound = errors.New("season not found")

	// ErrEpisodeNotFound indicates the season has no episode with the requested number.
	ErrEpisodeNotFound = errors.New("episode not found")
)

// Series is a TV show. Seasons is only populated for records loaded with
// season data.
type Series struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Year      int      `json:"year,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	Backdrops []string `json:"backdrops,omitempty"` // full image URLs
	Seasons   []Season `json:"seasons,omitempty"`
}

// Season is one season of a series.
type Season struct {
	Number   int       `json:"number"`
	Poster   string    `json:"poster,omitempty"` // full image URL
	Banner   string    `json:"banner,omitempty"` // fallback artwork URL
	Episodes []Episode `json:"episodes,omitempty"`
}

// Episode is a single episode of a season.
type Episode struct {
	ID       int64     `json:"id"`
	Number   int       `json:"number"`
	Name     string    `json:"name"`
	Overview string    `json:"overview"`
	AirDate  time.Time `json:"air_date"`
	Cast     []string  `json:"cast,omitempty"`
	Still    string    `json:"still,omitempty"` // full image URL
}

// Movie is a feature film.
type Movie struct {
	ID          int64     `json:"id"`
	IMDBID      string    `json:"imdb_id,omitempty"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	ReleaseDate time.Time `json:"release_date"`
	Runtime     int       `json:"runtime"` // minutes
	Cast        []string  `json:"cast,omitempty"`
	Genres      []string  `json:"genres,omitempty"`
	Poster      string    `json:"poster,omitempty"`
	Backdrops   []string  `json:"backdrops,omitempty"`
}

// Season returns the season with the given number.
func (s *Series) Season(number int) (*Season, error) {
	for i := range s.Seasons {
		if s.Seasons[i].Number == number {
			return &s.Seasons[i], nil
		}
	}
	return nil, fmt.Errorf("%s season %d: %w", s.Name, number, ErrSeasonNotFound)
}

// Episode returns the episode with the given number.
func (s *Season) Episode(number int) (*Episode, error) {
	for i := range s.Episodes {
		if s.Episodes[i].Number == number {
			return &s.Episodes[i], nil
		}
	}
	return nil, fmt.Errorf("season %d episode %d: %w", s.Number, number, ErrEpisodeNotFound)
}

// Year returns the release year, or 0 when the release date is unknown.
func (m *Movie) Year() int {
	if m.ReleaseDate.IsZero() {
		return 0
	}
	return m.ReleaseDate.Year()
}

// Label formats the movie as "Title (Year)" for diagnostics.
func (m *Movie) Label() string {
	if y := m.Year(); y != 0 {
		return fmt.Sprintf("%s (%d)", m.Title, y)
	}
	return m.Title
}

// ParseDate parses a YYYY-MM-DD date as returned by the metadata APIs.
// Empty or malformed input yields the zero time.
func ParseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
