// Package tvdb provides a client for the TVDB API v4.
package tvdb

import "time"

// Artwork types used by TVDB v4 for series-level images.
const (
	ArtworkBanner     = 1
	ArtworkPoster     = 2
	ArtworkBackground = 3
)

// Series represents a TV series from TVDB, including the extended record
// fields needed for descriptors.
type Series struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Year     int       `json:"year"` // Extracted from firstAired
	Status   string    `json:"status"`
	Overview string    `json:"overview"`
	Genres   []string  `json:"genres,omitempty"`
	Artworks []Artwork `json:"artworks,omitempty"`
	Seasons  []Season  `json:"seasons,omitempty"`
}

// Artwork is an image attached to a series.
type Artwork struct {
	Image string `json:"image"`
	Type  int    `json:"type"`
}

// Season is an official-order season of a series.
type Season struct {
	ID     int    `json:"id"`
	Number int    `json:"number"`
	Image  string `json:"image"`
}

// Episode represents a single episode from TVDB.
type Episode struct {
	ID       int       `json:"id"`
	Season   int       `json:"seasonNumber"`
	Episode  int       `json:"number"`
	Name     string    `json:"name"`
	Overview string    `json:"overview"`
	AirDate  time.Time `json:"aired"` // Parsed from YYYY-MM-DD
	Runtime  int       `json:"runtime"`
	Image    string    `json:"image"`
}

// SearchResult represents a series search result.
type SearchResult struct {
	ID       int    `json:"tvdb_id"`
	Name     string `json:"name"`
	Year     int    `json:"year"`
	Status   string `json:"status"`
	Overview string `json:"overview"`
	Network  string `json:"network"`
}

// Backgrounds returns the URLs of all background (fanart) artworks.
func (s *Series) Backgrounds() []string {
	var urls []string
	for _, a := range s.Artworks {
		if a.Type == ArtworkBackground && a.Image != "" {
			urls = append(urls, a.Image)
		}
	}
	return urls
}

type loginResponse struct {
	Status string `json:"status"`
	Data   struct {
		Token string `json:"token"`
	} `json:"data"`
}

type searchItem struct {
	ObjectID string `json:"objectID"`
	Name     string `json:"name"`
	Year     string `json:"year"`
	Status   string `json:"status"`
	Overview string `json:"overview"`
	Network  string `json:"network"`
	TVDBID   string `json:"tvdb_id"`
}

type searchResponse struct {
	Status string       `json:"status"`
	Data   []searchItem `json:"data"`
}

// extendedSeriesResponse is the /series/{id}/extended payload.
type extendedSeriesResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID     int    `json:"id"`
		Name   string `json:"name"`
		Status struct {
			Name string `json:"name"`
		} `json:"status"`
		Overview   string `json:"overview"`
		FirstAired string `json:"firstAired"` // YYYY-MM-DD
		Genres     []struct {
			Name string `json:"name"`
		} `json:"genres"`
		Artworks []struct {
			Image string `json:"image"`
			Type  int    `json:"type"`
		} `json:"artworks"`
		Seasons []struct {
			ID     int    `json:"id"`
			Number int    `json:"number"`
			Image  string `json:"image"`
			Type   struct {
				Type string `json:"type"`
			} `json:"type"`
		} `json:"seasons"`
	} `json:"data"`
}

type episodeItem struct {
	ID           int    `json:"id"`
	SeasonNumber int    `json:"seasonNumber"`
	Number       int    `json:"number"`
	Name         string `json:"name"`
	Overview     string `json:"overview"`
	Aired        string `json:"aired"` // YYYY-MM-DD
	Runtime      int    `json:"runtime"`
	Image        string `json:"image"`
}

type episodesResponse struct {
	Status string `json:"status"`
	Data   struct {
		Episodes []episodeItem `json:"episodes"`
	} `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}
