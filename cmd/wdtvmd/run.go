package main

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/vmunix/wdtvmd/internal/resolver"
	"github.com/vmunix/wdtvmd/internal/walker"
)

// lookupFunc resolves one media file.
type lookupFunc func(ctx context.Context, path string) (resolver.Outcome, error)

// tally counts lookup outcomes across workers.
type tally struct {
	processed, skipped, notFound, failed atomic.Int64
}

func (t *tally) record(o resolver.Outcome) {
	switch o {
	case resolver.OutcomeProcessed:
		t.processed.Add(1)
	case resolver.OutcomeSkipped:
		t.skipped.Add(1)
	case resolver.OutcomeNotFound:
		t.notFound.Add(1)
	default:
		t.failed.Add(1)
	}
}

// runLookups walks roots, resolves every media file and reports failures.
func runLookups(ctx context.Context, a *app, roots []string, lookup lookupFunc) error {
	abs := make([]string, 0, len(roots))
	for _, root := range roots {
		// Series names come from parent directories, so relative roots
		// like "." must be expanded.
		p, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", root, err)
		}
		abs = append(abs, p)
	}

	var counts tally
	w := walker.Walker{Workers: workers, Log: a.log}
	failures := w.Run(ctx, abs, func(ctx context.Context, path string) error {
		outcome, err := lookup(ctx, path)
		counts.record(outcome)
		return err
	})

	a.log.Info("done",
		"processed", counts.processed.Load(),
		"skipped", counts.skipped.Load(),
		"not_found", counts.notFound.Load(),
		"failed", len(failures),
	)

	fmt.Fprint(a.out, renderFailures(a.out, failures))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	if len(failures) > 0 {
		return errFilesFailed
	}
	return nil
}
