// Package naming infers series, season, episode, and movie identity from
// media file paths.
package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// The leading greedy .* makes each pattern bind to the last occurrence in
// the input, matching how the library has always been scanned.
var (
	combinedRegex = regexp.MustCompile(`(?i)^.*s([0-9]{1,2})e([0-9]{1,2})`)
	seasonRegex   = regexp.MustCompile(`^.*[Ss]eason ([0-9]{1,2})`)
	episodeRegex  = regexp.MustCompile(`^.*[Ee]pisode ([0-9]+)`)
	numbersRegex  = regexp.MustCompile(`^.*([0-9]{2})`)
)

var folder = cases.Fold()

// GuessEpisode returns the season and episode numbers for a media path.
//
// An SxxEyy marker anywhere in the path wins outright. Otherwise the season
// comes from a "Season N" directory and the episode from an "Episode N"
// marker or a two-digit run in the base name.
func GuessEpisode(path string) (season, episode int, err error) {
	if m := combinedRegex.FindStringSubmatch(path); m != nil {
		season, _ = strconv.Atoi(m[1])
		episode, _ = strconv.Atoi(m[2])
		return season, episode, nil
	}

	if m := seasonRegex.FindStringSubmatch(path); m != nil {
		season, _ = strconv.Atoi(m[1])
	}

	base := filepath.Base(path)
	if m := episodeRegex.FindStringSubmatch(base); m != nil {
		episode, _ = strconv.Atoi(m[1])
	}
	if episode == 0 {
		if m := numbersRegex.FindStringSubmatch(base); m != nil {
			episode, _ = strconv.Atoi(m[1])
		}
	}

	if season == 0 || episode == 0 {
		return 0, 0, formatError(path, "unable to detect season/episode info")
	}
	return season, episode, nil
}

// GuessSeriesName expects /library/Series/Season X/episode.mkv or
// /library/Series/episode.mkv and returns "Series" for both.
func GuessSeriesName(path string) (string, error) {
	pieces := strings.Split(filepath.ToSlash(filepath.Clean(path)), "/")
	if len(pieces) < 3 {
		return "", formatError(path, "path too short to contain a series directory")
	}

	top := pieces[len(pieces)-3]
	mid := pieces[len(pieces)-2]

	name := mid
	if strings.Contains(folder.String(mid), "season") {
		name = top
	}
	if strings.TrimSpace(name) == "" {
		return "", formatError(path, "unable to detect series name")
	}
	return name, nil
}
