package resolver

import "github.com/vmunix/wdtvmd/internal/media"

// TVRecord is the resolved identity of one episode file.
type TVRecord struct {
	Series  *media.Series
	Season  *media.Season
	Episode *media.Episode
	Extra   *Enrichment // nil when enrichment was unavailable
}

// Enrichment is the same episode as seen by the secondary source.
type Enrichment struct {
	Series  *media.Series
	Season  *media.Season
	Episode *media.Episode
}

// Genres prefers the secondary source's genres.
func (r *TVRecord) Genres() []string {
	if r.Extra != nil && len(r.Extra.Series.Genres) > 0 {
		return r.Extra.Series.Genres
	}
	return r.Series.Genres
}

// Cast prefers the secondary source's episode cast.
func (r *TVRecord) Cast() []string {
	if r.Extra != nil && len(r.Extra.Episode.Cast) > 0 {
		return r.Extra.Episode.Cast
	}
	return r.Episode.Cast
}

// Backdrops prefers the secondary source's series backdrops.
func (r *TVRecord) Backdrops() []string {
	if r.Extra != nil && len(r.Extra.Series.Backdrops) > 0 {
		return r.Extra.Series.Backdrops
	}
	return r.Series.Backdrops
}

// Thumb is the episode still, falling back to the season banner.
func (r *TVRecord) Thumb() string {
	if r.Extra != nil && r.Extra.Episode.Still != "" {
		return r.Extra.Episode.Still
	}
	if r.Episode.Still != "" {
		return r.Episode.Still
	}
	return r.Season.Banner
}

// Poster is the season poster, falling back to the season banner.
func (r *TVRecord) Poster() string {
	if r.Extra != nil && r.Extra.Season.Poster != "" {
		return r.Extra.Season.Poster
	}
	if r.Season.Poster != "" {
		return r.Season.Poster
	}
	return r.Season.Banner
}
