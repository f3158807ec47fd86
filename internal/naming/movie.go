package naming

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// yearRegex matches the first parenthesized year after at least one
// character of title.
var yearRegex = regexp.MustCompile(`^.+?\(([12][0-9]{3})\)`)

// GuessYear returns the release year embedded in a movie filename as
// "Title (2005).mkv".
func GuessYear(path string) (int, bool) {
	return findYear(filepath.Base(path))
}

// GuessName returns the movie title for a path: the base name without its
// extension and without the parenthesized year.
func GuessName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if year, ok := findYear(base); ok {
		name = stripYear(name, year)
	}
	return name
}

// ProcessHint splits a user supplied title such as "Heat (1995)" into its
// name and year. Hints without a year are returned unchanged, with ok false.
func ProcessHint(hint string) (name string, year int, ok bool) {
	year, ok = findYear(hint)
	if !ok {
		return hint, 0, false
	}
	return stripYear(hint, year), year, true
}

func findYear(s string) (int, bool) {
	m := yearRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return year, true
}

func stripYear(s string, year int) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "("+strconv.Itoa(year)+")", ""))
}
