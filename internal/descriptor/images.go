package descriptor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"golang.org/x/sync/singleflight"
)

// ErrDownload indicates an image could not be fetched.
var ErrDownload = errors.New("image download failed")

// Writer produces sidecar files. Image writes never replace an existing
// file, and concurrent writes to the same target are collapsed into one.
type Writer struct {
	httpClient *http.Client
	log        *slog.Logger
	maxBytes   int64
	group      singleflight.Group
}

// Option configures a Writer.
type Option func(*Writer)

// WithHTTPClient sets the client used for image downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(w *Writer) {
		w.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) {
		w.log = l
	}
}

// NewWriter creates a Writer.
func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        slog.New(slog.DiscardHandler),
		maxBytes:   maxImageLen,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With("component", "descriptor")
	return w
}

// WriteTVXML writes an episode descriptor.
func (w *Writer) WriteTVXML(target string, d TVDetails) error {
	return WriteTVXML(target, d)
}

// WriteMovieXML writes a movie descriptor.
func (w *Writer) WriteMovieXML(target string, d MovieDetails) error {
	return WriteMovieXML(target, d)
}

// WriteThumb downloads url to target unless target exists or url is empty.
func (w *Writer) WriteThumb(ctx context.Context, target, url string) error {
	return w.fetchOnce(ctx, target, url)
}

// WriteSeasonPoster downloads url to folder.jpg in dir unless it exists or
// url is empty.
func (w *Writer) WriteSeasonPoster(ctx context.Context, dir, url string) error {
	return w.fetchOnce(ctx, filepath.Join(dir, posterName), url)
}

func (w *Writer) fetchOnce(ctx context.Context, target, url string) error {
	if url == "" || exists(target) {
		return nil
	}
	_, err, _ := w.group.Do(target, func() (any, error) {
		// Another caller may have finished while we waited.
		if exists(target) {
			return nil, nil
		}
		return nil, w.download(ctx, url, target)
	})
	return err
}

func (w *Writer) download(ctx context.Context, url, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDownload, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: status %d", ErrDownload, url, resp.StatusCode)
	}

	pending, err := renameio.NewPendingFile(target, renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("create pending image: %w", err)
	}
	defer func() {
		_ = pending.Cleanup()
	}()

	n, err := io.Copy(pending, io.LimitReader(resp.Body, w.maxBytes+1))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDownload, url, err)
	}
	if n > w.maxBytes {
		return fmt.Errorf("%w: %s: larger than %d bytes", ErrDownload, url, w.maxBytes)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("replace %s: %w", target, err)
	}

	w.log.Debug("image written", "target", target, "bytes", n)
	return nil
}
