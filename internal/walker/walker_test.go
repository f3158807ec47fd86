package walker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates files (relative, slash separated) under a temp dir.
func makeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
	return root
}

// recorder is a handler that records calls and fails for chosen base names.
type recorder struct {
	mu     sync.Mutex
	calls  []string
	failOn string
	err    error
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	r.calls = append(r.calls, path)
	r.mu.Unlock()
	if r.failOn != "" && strings.HasPrefix(filepath.Base(path), r.failOn) {
		return r.err
	}
	return nil
}

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.mkv", true},
		{"a.MKV", true},
		{"dir/a.mp4", true},
		{"a.m4v", true},
		{"a.avi", true},
		{"a.mpg", true},
		{"a.mp2", true},
		{"a.txt", false},
		{"a.mkv.part", false},
		{"mkv", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsMediaFile(tt.path), tt.path)
	}
}

func TestHandleRecursive_SkipsNonMedia(t *testing.T) {
	root := makeTree(t, "a.mkv", "b.txt", "subdir/c.avi")
	rec := &recorder{failOn: "b", err: errors.New("boom")}

	failures := HandleRecursive(context.Background(), root, rec.handle)

	assert.Empty(t, failures)
	assert.Equal(t, []string{
		filepath.Join(root, "a.mkv"),
		filepath.Join(root, "subdir", "c.avi"),
	}, rec.calls)
}

func TestHandleRecursive_CollectsFailures(t *testing.T) {
	root := makeTree(t, "a.mkv", "b.txt", "subdir/c.avi")
	boom := errors.New("boom")
	rec := &recorder{failOn: "a", err: boom}

	failures := HandleRecursive(context.Background(), root, rec.handle)

	require.Len(t, failures, 1)
	assert.Equal(t, filepath.Join(root, "a.mkv"), failures[0].Path)
	assert.ErrorIs(t, failures[0], boom)
	assert.Contains(t, rec.calls, filepath.Join(root, "subdir", "c.avi"), "traversal continues after a failure")
}

func TestHandleRecursive_RecoversPanics(t *testing.T) {
	root := makeTree(t, "a.mkv", "b.mkv")
	var calls []string

	failures := HandleRecursive(context.Background(), root, func(_ context.Context, path string) error {
		calls = append(calls, filepath.Base(path))
		if filepath.Base(path) == "a.mkv" {
			panic("index out of range")
		}
		return nil
	})

	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Err.Error(), "index out of range")
	assert.Equal(t, []string{"a.mkv", "b.mkv"}, calls)
}

func TestHandleRecursive_SingleFile(t *testing.T) {
	root := makeTree(t, "movie.mp4")
	rec := &recorder{}

	failures := HandleRecursive(context.Background(), filepath.Join(root, "movie.mp4"), rec.handle)

	assert.Empty(t, failures)
	assert.Len(t, rec.calls, 1)
}

func TestHandleRecursive_MissingPath(t *testing.T) {
	rec := &recorder{}

	failures := HandleRecursive(context.Background(), filepath.Join(t.TempDir(), "nope"), rec.handle)

	assert.Empty(t, failures)
	assert.Empty(t, rec.calls)
}

func TestDiscover_SortedAndSkipsHidden(t *testing.T) {
	root := makeTree(t, "b.mkv", "a.mkv", ".hidden.mkv", ".trash/x.mkv", "Season 02/e.mkv", "Season 01/e.mkv")

	got := Discover(root)

	var rel []string
	for _, p := range got {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"Season 01/e.mkv", "Season 02/e.mkv", "a.mkv", "b.mkv"}, rel)
}

func TestWalker_ParallelKeepsOrder(t *testing.T) {
	var files []string
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files = append(files, "dir/"+name+".mkv")
	}
	root := makeTree(t, files...)
	fail := func(_ context.Context, path string) error {
		base := filepath.Base(path)
		if base == "b.mkv" || base == "f.mkv" || base == "h.mkv" {
			return errors.New(base)
		}
		return nil
	}

	sequential := Walker{Workers: 1}.Run(context.Background(), []string{root}, fail)
	parallel := Walker{Workers: 4}.Run(context.Background(), []string{root}, fail)

	require.Len(t, sequential, 3)
	assert.Equal(t, sequential, parallel)
	assert.Equal(t, filepath.Join(root, "dir", "b.mkv"), parallel[0].Path)
	assert.Equal(t, filepath.Join(root, "dir", "h.mkv"), parallel[2].Path)
}

func TestWalker_MultipleRoots(t *testing.T) {
	first := makeTree(t, "x.mkv")
	second := makeTree(t, "y.avi")
	rec := &recorder{}

	failures := Walker{}.Run(context.Background(), []string{first, second}, rec.handle)

	assert.Empty(t, failures)
	assert.Equal(t, []string{filepath.Join(first, "x.mkv"), filepath.Join(second, "y.avi")}, rec.calls)
}

func TestWalker_CanceledContext(t *testing.T) {
	root := makeTree(t, "a.mkv", "b.mkv")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}

	failures := Walker{}.Run(ctx, []string{root}, rec.handle)

	assert.Empty(t, failures)
	assert.Empty(t, rec.calls)
}
