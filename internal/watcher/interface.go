package watcher

import "context"

// Watcher blocks until a file has stopped changing
type Watcher interface {
	WaitStable(ctx context.Context) error
	Stop() error
}
