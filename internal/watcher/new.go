package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/scribe/internal/logger"
)

// New creates a Watcher for path. quiet is how long the file must see no
// writes before it counts as stable.
func New(path string, quiet time.Duration, log logger.Logger) (Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory; editors and recorders often replace the file.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		path:    absPath,
		quiet:   quiet,
		logger:  log,
		watcher: watcher,
	}, nil
}
