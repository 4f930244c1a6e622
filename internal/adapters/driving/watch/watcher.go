// Package watch submits files dropped into a watched directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driven/source/filesystem"
	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driving"
	"github.com/polyglot-labs/polyglot-cli/internal/logger"
)

// DefaultDebounce is how long the watcher waits after the last new
// file before submitting the accumulated batch.
const DefaultDebounce = 2 * time.Second

// Config holds configuration for the directory watcher.
type Config struct {
	// Dir is the directory to watch (required).
	Dir string

	// Debounce is the quiet period before a batch is submitted
	// (default: 2s).
	Debounce time.Duration
}

// Watcher queues files created in a directory and submits them as
// batches once the directory goes quiet.
type Watcher struct {
	intake     driving.IntakeService
	submission driving.SubmissionCoordinator
	download   driving.DownloadService
	dir        string
	debounce   time.Duration
}

// New creates a directory watcher.
func New(cfg Config, intake driving.IntakeService, submission driving.SubmissionCoordinator,
	download driving.DownloadService) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, errors.New("watch directory is required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &Watcher{
		intake:     intake,
		submission: submission,
		download:   download,
		dir:        cfg.Dir,
		debounce:   cfg.Debounce,
	}, nil
}

// Run watches the directory until the context is cancelled. Each newly
// created file or directory is queued; after a quiet period the queued
// batch is submitted and the artifact archive downloaded.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	logger.Info("watching %s", w.dir)

	// pending is nil until a file arrives; each arrival re-arms it.
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !ev.Op.Has(fsnotify.Create) {
				continue
			}
			if w.queue(ctx, ev.Name) {
				pending = time.After(w.debounce)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-pending:
			pending = nil
			if retry := w.flush(ctx); retry {
				pending = time.After(w.debounce)
			}
		}
	}
}

// queue registers a created path as a drop event. Directories are
// walked recursively. Reports whether anything was queued.
func (w *Watcher) queue(ctx context.Context, path string) bool {
	entry, err := filesystem.NewEntry(path)
	if err != nil {
		// The path may already be gone; temp files come and go.
		logger.Debug("skipping %s: %v", path, err)
		return false
	}

	items, err := w.intake.AddDrop(ctx, []domain.DropEntry{entry})
	if err != nil {
		logger.Warn("failed to queue %s: %v", path, err)
		return false
	}
	for _, item := range items {
		logger.Info("queued %s (%s)", item.DisplayPath(), domain.FormatSize(item.SizeBytes))
	}
	return len(items) > 0
}

// flush submits the queued batch and downloads the archive. Reports
// whether the flush should be retried after another quiet period.
func (w *Watcher) flush(ctx context.Context) bool {
	if err := w.submission.Submit(ctx); err != nil {
		if errors.Is(err, domain.ErrSubmitInProgress) {
			return true
		}
		logger.Warn("submission failed: %v", err)
		return false
	}

	counts, err := w.submission.Counts(ctx)
	if err == nil {
		logger.Info("batch done: %d translated, %d failed", counts.Translated, counts.Errored)
	}

	name, err := w.download.DownloadAll(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNoTranslated) {
			logger.Warn("archive download failed: %v", err)
		}
		return false
	}
	logger.Info("saved %s", name)
	return false
}
