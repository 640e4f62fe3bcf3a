package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

type implWatcher struct {
	path    string
	quiet   time.Duration
	logger  logger.Logger
	watcher *fsnotify.Watcher
}

// WaitStable returns once the file has gone quiet for the configured period.
// It fails if the file is removed or renamed while waiting.
func (w *implWatcher) WaitStable(ctx context.Context) error {
	w.logger.Info(ctx, "Waiting for %s to settle (%s without writes)", w.path, w.quiet)

	timer := time.NewTimer(w.quiet)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-timer.C:
			w.logger.Debug(ctx, "Input settled: %s", w.path)
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}

			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				return fmt.Errorf("input %s disappeared while waiting", w.path)
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.logger.Debug(ctx, "Input still changing: %s", event)
				timer.Reset(w.quiet)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
