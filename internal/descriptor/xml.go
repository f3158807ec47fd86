package descriptor

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/renameio/v2"

	"github.com/vmunix/wdtvmd/internal/media"
)

// castSeparator joins cast names into a single element.
const castSeparator = " / "

// TVDetails is the descriptor document of a TV episode. Field order is the
// element order the player expects.
type TVDetails struct {
	XMLName       xml.Name `xml:"details"`
	ID            int64    `xml:"id"`
	Title         string   `xml:"title"`
	SeasonNumber  int      `xml:"season_number"`
	EpisodeNumber int      `xml:"episode_number"`
	Overview      string   `xml:"overview"`
	SeriesName    string   `xml:"series_name"`
	EpisodeName   string   `xml:"episode_name"`
	FirstAired    string   `xml:"firstaired"`
	Genre         string   `xml:"genre,omitempty"`
	Actor         string   `xml:"actor,omitempty"`
	Backdrops     []string `xml:"backdrop"`
}

// MovieDetails is the descriptor document of a movie.
type MovieDetails struct {
	XMLName   xml.Name `xml:"details"`
	ID        int64    `xml:"id"`
	IMDBID    string   `xml:"imdb_id"`
	Overview  string   `xml:"overview"`
	Year      string   `xml:"year"` // release date, YYYY-MM-DD
	Runtime   int      `xml:"runtime"`
	Title     string   `xml:"title"`
	Cast      string   `xml:"cast,omitempty"`
	Genre     string   `xml:"genre,omitempty"`
	Backdrops []string `xml:"backdrop"`
}

// NewTVDetails flattens an episode and its series data into a descriptor.
// Only the first genre is kept and cast names are joined.
func NewTVDetails(seriesName string, season int, ep *media.Episode, genres, cast, backdrops []string) TVDetails {
	return TVDetails{
		ID:            ep.ID,
		Title:         fmt.Sprintf("%02d: %s", ep.Number, ep.Name),
		SeasonNumber:  season,
		EpisodeNumber: ep.Number,
		Overview:      ep.Overview,
		SeriesName:    seriesName,
		EpisodeName:   ep.Name,
		FirstAired:    formatDate(ep.AirDate),
		Genre:         first(genres),
		Actor:         strings.Join(cast, castSeparator),
		Backdrops:     backdrops,
	}
}

// NewMovieDetails flattens a movie into a descriptor.
func NewMovieDetails(m *media.Movie) MovieDetails {
	return MovieDetails{
		ID:        m.ID,
		IMDBID:    m.IMDBID,
		Overview:  m.Overview,
		Year:      formatDate(m.ReleaseDate),
		Runtime:   m.Runtime,
		Title:     m.Title,
		Cast:      strings.Join(m.Cast, castSeparator),
		Genre:     first(m.Genres),
		Backdrops: m.Backdrops,
	}
}

// WriteTVXML atomically writes an episode descriptor to target.
func WriteTVXML(target string, d TVDetails) error {
	return writeXML(target, d)
}

// WriteMovieXML atomically writes a movie descriptor to target.
func WriteMovieXML(target string, d MovieDetails) error {
	return writeXML(target, d)
}

// ReadDetails parses a descriptor previously written by this package.
func ReadDetails[T TVDetails | MovieDetails](path string) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open descriptor: %w", err)
	}
	defer f.Close()

	var d T
	if err := xml.NewDecoder(f).Decode(&d); err != nil {
		return nil, fmt.Errorf("parse descriptor %s: %w", path, err)
	}
	return &d, nil
}

func writeXML(target string, v any) error {
	pending, err := renameio.NewPendingFile(target, renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("create pending descriptor: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	if err := encodeXML(pending, v); err != nil {
		return fmt.Errorf("write descriptor %s: %w", target, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace descriptor %s: %w", target, err)
	}
	return nil
}

func encodeXML(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
