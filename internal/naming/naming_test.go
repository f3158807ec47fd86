package naming

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessEpisode(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		wantSeason  int
		wantEpisode int
	}{
		{"combined marker", "/tv/Show/Season 03/Show.S03E07.mkv", 3, 7},
		{"lowercase marker", "/tv/Show/show.s1e2.avi", 1, 2},
		{"marker beats season dir", "/tv/Show/Season 09/Show.S03E07.mkv", 3, 7},
		{"marker beats episode number", "/tv/Show/Season 01/Episode 44 - s02e05.mkv", 2, 5},
		{"last marker wins", "/tv/Show S01E01/Show.S01E02.mkv", 1, 2},
		{"season dir and two digits", "/tv/Show/Season 2/Show - 14 - Title.mkv", 2, 14},
		{"season dir and episode marker", "/tv/Show/Season 4/Episode 3.mkv", 4, 3},
		{"episode marker preferred over digits", "/tv/Show/Season 4/Episode 3 (1080).mkv", 4, 3},
		{"multi digit episode marker", "/tv/Show/Season 1/Episode 112.mkv", 1, 112},
		{"two digit season dir", "/tv/Show/Season 12/Show 05.mp4", 12, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			season, episode, err := GuessEpisode(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeason, season)
			assert.Equal(t, tt.wantEpisode, episode)
		})
	}
}

func TestGuessEpisode_Errors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"no season", "/tv/Show/Show 05.mkv"},
		{"no episode", "/tv/Show/Season 1/Pilot.mkv"},
		{"nothing", "/tv/Show/pilot.mkv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GuessEpisode(tt.path)
			var formatErr *FilenameFormatError
			require.True(t, errors.As(err, &formatErr), "expected FilenameFormatError, got %v", err)
			assert.Equal(t, tt.path, formatErr.Path)
		})
	}
}

func TestGuessSeriesName(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"season folder", "/tv/Show/Season 03/Show.S03E07.mkv", "Show"},
		{"season folder lowercase", "/tv/Show/season 3/Show.S03E07.mkv", "Show"},
		{"season folder uppercase", "/tv/Show/SEASON 3/Show.S03E07.mkv", "Show"},
		{"specials named season", "/tv/Other Show/Season Specials/ep.mkv", "Other Show"},
		{"no season folder", "/tv/Show/Show - S03E07.mkv", "Show"},
		{"relative path", "tv/Show/Show - S03E07.mkv", "Show"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GuessSeriesName(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuessSeriesName_TooShort(t *testing.T) {
	for _, path := range []string{"ep.mkv", "Show/ep.mkv", "/Season 1/ep.mkv"} {
		_, err := GuessSeriesName(path)
		var formatErr *FilenameFormatError
		assert.True(t, errors.As(err, &formatErr), "path %q: expected FilenameFormatError, got %v", path, err)
	}
}

func TestGuessYear(t *testing.T) {
	tests := []struct {
		path   string
		want   int
		wantOK bool
	}{
		{"Movie Title (2005).mkv", 2005, true},
		{"/movies/Movie Title (1999).mp4", 1999, true},
		{"/movies/(2001)/Movie Title.mkv", 0, false},
		{"Movie Title.mkv", 0, false},
		{"Movie (3005).mkv", 0, false},
		{"(2005).mkv", 0, false},
		{"Remake (1984) (2010).mkv", 1984, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := GuessYear(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuessName(t *testing.T) {
	assert.Equal(t, "Movie Title", GuessName("/movies/Movie Title (2005).mkv"))
	assert.Equal(t, "Movie Title", GuessName("/movies/Movie Title.mkv"))
	assert.Equal(t, "Heat", GuessName("Heat (1995).m4v"))
}

func TestProcessHint(t *testing.T) {
	name, year, ok := ProcessHint("Heat (1995)")
	assert.True(t, ok)
	assert.Equal(t, "Heat", name)
	assert.Equal(t, 1995, year)

	name, year, ok = ProcessHint("  Heat ")
	assert.False(t, ok)
	assert.Equal(t, "  Heat ", name, "hints without a year are used verbatim")
	assert.Zero(t, year)
}
