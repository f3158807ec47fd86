package resolver

import (
	"fmt"
	"strings"
)

// AmbiguousResultError is returned when a search yields several candidates
// and none can be chosen by exact name.
type AmbiguousResultError struct {
	Guess      string   // name searched for
	Candidates []string // candidate names in result order
	Suggestion string   // closest candidate, if any is reasonably close
}

func newAmbiguousResultError(guess string, candidates []string) *AmbiguousResultError {
	return &AmbiguousResultError{
		Guess:      guess,
		Candidates: candidates,
		Suggestion: closest(guess, candidates),
	}
}

func (e *AmbiguousResultError) Error() string {
	msg := fmt.Sprintf("ambiguous result for %q (%d): %s",
		e.Guess, len(e.Candidates), strings.Join(e.Candidates, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (closest: %q)", e.Suggestion)
	}
	return msg
}
