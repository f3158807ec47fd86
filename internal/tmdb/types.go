// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// ImageBaseURL prefixes TMDB image paths. Descriptors reference the
// original size.
const ImageBaseURL = "https://image.tmdb.org/t/p/original"

// MovieResult is a movie search hit.
type MovieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"` // "2024-03-01"
}

// Year extracts the year from ReleaseDate.
func (r MovieResult) Year() int {
	return yearOf(r.ReleaseDate)
}

// TVResult is a TV search hit.
type TVResult struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	FirstAirDate string `json:"first_air_date"`
}

// Movie represents TMDB movie metadata with credits and images appended.
type Movie struct {
	ID           int64   `json:"id"`
	IMDBID       string  `json:"imdb_id,omitempty"` // e.g., "tt0133093"
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	ReleaseDate  string  `json:"release_date"` // "2024-03-01"
	PosterPath   string  `json:"poster_path"`  // "/abc123.jpg"
	BackdropPath string  `json:"backdrop_path"`
	Runtime      int     `json:"runtime"` // minutes
	Genres       []Genre `json:"genres"`
	Credits      Credits `json:"credits"`
	Images       Images  `json:"images"`
}

// Year extracts the year from ReleaseDate.
func (m *Movie) Year() int {
	return yearOf(m.ReleaseDate)
}

// TV represents a TV series with images appended.
type TV struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	BackdropPath string  `json:"backdrop_path"`
	Genres       []Genre `json:"genres"`
	Images       Images  `json:"images"`
}

// Season is a TV season with its episode list.
type Season struct {
	ID           int64     `json:"id"`
	SeasonNumber int       `json:"season_number"`
	PosterPath   string    `json:"poster_path"`
	Episodes     []Episode `json:"episodes"`
}

// Episode is one entry of a season's episode list.
type Episode struct {
	ID            int64  `json:"id"`
	EpisodeNumber int    `json:"episode_number"`
	SeasonNumber  int    `json:"season_number"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	AirDate       string `json:"air_date"`
	StillPath     string `json:"still_path"`
}

// Genre represents a genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Credits lists cast members in billing order.
type Credits struct {
	Cast       []CastMember `json:"cast"`
	GuestStars []CastMember `json:"guest_stars,omitempty"`
}

// CastMember is a credited actor.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// Images holds appended image lists.
type Images struct {
	Backdrops []Image `json:"backdrops"`
	Posters   []Image `json:"posters"`
}

// Image is a single image entry.
type Image struct {
	FilePath string `json:"file_path"`
}

// ImageURL returns the full URL for an image path, or "" for an empty path.
func ImageURL(path string) string {
	if path == "" {
		return ""
	}
	return ImageBaseURL + path
}

// BackdropURLs returns full URLs for the appended backdrops, falling back
// to the single backdrop path when no image list was appended.
func BackdropURLs(images Images, backdropPath string) []string {
	var urls []string
	for _, img := range images.Backdrops {
		if img.FilePath != "" {
			urls = append(urls, ImageURL(img.FilePath))
		}
	}
	if len(urls) == 0 && backdropPath != "" {
		urls = append(urls, ImageURL(backdropPath))
	}
	return urls
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return 0
	}
	return year
}

type movieSearchResponse struct {
	Results []MovieResult `json:"results"`
}

type tvSearchResponse struct {
	Results []TVResult `json:"results"`
}
