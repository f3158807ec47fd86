package resolver

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minSuggestScore is the Jaro-Winkler similarity below which no candidate
// is suggested.
const minSuggestScore = 0.80

// closest returns the candidate most similar to guess, or "" when nothing is
// similar enough. It only feeds diagnostics and never selects a record.
func closest(guess string, candidates []string) string {
	want := cleanTitle(guess)
	var best string
	var bestScore float32
	for _, c := range candidates {
		score := edlib.JaroWinklerSimilarity(want, cleanTitle(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	if bestScore < minSuggestScore {
		return ""
	}
	return best
}

// cleanTitle lowercases, strips accents and punctuation and collapses
// whitespace.
func cleanTitle(title string) string {
	s := removeAccents(strings.ToLower(title))
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '\'':
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
