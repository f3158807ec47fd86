// Package walker traverses media directory trees and runs a handler for
// every media file found, collecting per-file failures instead of aborting.
package walker

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// mediaExtensions are the file extensions the player can index.
var mediaExtensions = map[string]bool{
	".mkv": true,
	".mp4": true,
	".m4v": true,
	".avi": true,
	".mpg": true,
	".mp2": true,
}

// IsMediaFile reports whether path has a media extension (case-insensitive).
func IsMediaFile(path string) bool {
	return mediaExtensions[strings.ToLower(filepath.Ext(path))]
}

// Handler processes one media file.
type Handler func(ctx context.Context, path string) error

// Failure records a handler error for one file.
type Failure struct {
	Path string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

func (f Failure) Unwrap() error {
	return f.Err
}

// Discover returns the media files under path in traversal order.
// Directory entries are visited in name order and hidden entries are
// skipped. Missing paths and special files yield nothing.
func Discover(path string) []string {
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	switch {
	case info.IsDir():
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil
		}
		var files []string
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") {
				continue
			}
			files = append(files, Discover(filepath.Join(path, e.Name()))...)
		}
		return files
	case info.Mode().IsRegular():
		if IsMediaFile(path) {
			return []string{path}
		}
	}
	return nil
}

// HandleRecursive runs handler sequentially on every media file under path
// and returns the failures in traversal order.
func HandleRecursive(ctx context.Context, path string, handler Handler) []Failure {
	return Walker{}.Run(ctx, []string{path}, handler)
}

// Walker runs a handler over media trees with bounded parallelism.
type Walker struct {
	// Workers is the number of files processed at once. Values below 1
	// mean sequential processing.
	Workers int
	Log     *slog.Logger
}

// Run processes every media file under roots. A failing file never stops
// the others; failures are returned in traversal order regardless of the
// number of workers. Files not yet started when ctx is canceled are not
// processed.
func (w Walker) Run(ctx context.Context, roots []string, handler Handler) []Failure {
	log := w.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	var files []string
	for _, root := range roots {
		found := Discover(root)
		log.Debug("discovered media files", "root", root, "count", len(found))
		files = append(files, found...)
	}

	errs := make([]error, len(files))
	g := new(errgroup.Group)
	g.SetLimit(max(w.Workers, 1))
	for i, path := range files {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			errs[i] = call(ctx, handler, path)
			return nil
		})
	}
	_ = g.Wait()

	var failures []Failure
	for i, err := range errs {
		if err != nil {
			failures = append(failures, Failure{Path: files[i], Err: err})
		}
	}
	return failures
}

// call invokes handler, converting a panic into an error.
func call(ctx context.Context, handler Handler, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return handler(ctx, path)
}
