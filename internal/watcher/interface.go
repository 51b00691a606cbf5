package watcher

import "context"

// Watcher monitors a directory for new transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one newly arrived transcript file.
type Handler func(ctx context.Context, path string) error
