package naming

import "fmt"

// FilenameFormatError indicates that series, season, episode, or year
// information could not be recovered from a path.
type FilenameFormatError struct {
	Path   string
	Reason string
}

func (e *FilenameFormatError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func formatError(path, reason string) error {
	return &FilenameFormatError{Path: path, Reason: reason}
}
