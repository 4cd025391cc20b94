package fs

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes adapter internals for observability.
type StoreState struct {
	Path          string `json:"path"`
	IndexedCount  int    `json:"indexed_count"`
	NextID        int64  `json:"next_id"`
	WatcherActive bool   `json:"watcher_active"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	return StoreState{
		Path:          s.Path,
		IndexedCount:  s.index.Len(),
		NextID:        s.seq.peek(),
		WatcherActive: s.isWatcherActive(),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "fs"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
