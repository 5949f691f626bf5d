package watcher

import "context"

// Watcher monitors the transcripts directory for new files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called for each newly arrived transcript file.
type EventHandler func(ctx context.Context, filePath string) error
