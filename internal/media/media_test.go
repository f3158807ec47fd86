package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_SeasonEpisode(t *testing.T) {
	series := &Series{
		Name: "Show",
		Seasons: []Season{
			{Number: 1, Episodes: []Episode{{Number: 1, Name: "Pilot"}, {Number: 2, Name: "Second"}}},
			{Number: 3, Episodes: []Episode{{Number: 7, Name: "Seventh"}}},
		},
	}

	season, err := series.Season(3)
	require.NoError(t, err)
	assert.Equal(t, 3, season.Number)

	episode, err := season.Episode(7)
	require.NoError(t, err)
	assert.Equal(t, "Seventh", episode.Name)

	_, err = series.Season(2)
	assert.ErrorIs(t, err, ErrSeasonNotFound)

	_, err = season.Episode(1)
	assert.ErrorIs(t, err, ErrEpisodeNotFound)
}

func TestMovie_Label(t *testing.T) {
	m := &Movie{Title: "Heat", ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Heat (1995)", m.Label())
	assert.Equal(t, 1995, m.Year())

	undated := &Movie{Title: "Heat"}
	assert.Equal(t, "Heat", undated.Label())
	assert.Zero(t, undated.Year())
}

func TestParseDate(t *testing.T) {
	assert.Equal(t, time.Date(2008, 1, 20, 0, 0, 0, 0, time.UTC), ParseDate("2008-01-20"))
	assert.True(t, ParseDate("").IsZero())
	assert.True(t, ParseDate("2008").IsZero())
}
