package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// indexEntry holds the indexed fields of a single record: its name and
// timestamps, keyed secondarily so the watcher and status reporting can
// resolve records without re-parsing files.
type indexEntry struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	LastModified time.Time `json:"lastModified"`
}

// index is the persistent metadata index, stored as JSON under the system
// directory. Entries are keyed by record file name.
type index struct {
	path string

	mu      sync.RWMutex
	version int
	entries map[string]*indexEntry
	dirty   bool
}

func newIndex(path string) *index {
	return &index{
		path:    path,
		version: 1,
		entries: make(map[string]*indexEntry),
	}
}

type indexFile struct {
	Version int                    `json:"version"`
	Entries map[string]*indexEntry `json:"entries"`
}

// Load reads the index from disk. A missing file is not an error; a corrupt
// one is reported but leaves an empty, usable index (List rebuilds it).
func (ix *index) Load() error {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	data, err := os.ReadFile(ix.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	var f indexFile
	if err := json.Unmarshal(data, &f); err != nil {
		ix.entries = make(map[string]*indexEntry)
		return fmt.Errorf("corrupt index, rebuilding: %w", err)
	}
	if f.Entries != nil {
		ix.entries = f.Entries
	}
	ix.dirty = false
	return nil
}

// Save persists the index when dirty, atomically.
func (ix *index) Save() error {
	ix.mu.RLock()
	if !ix.dirty {
		ix.mu.RUnlock()
		return nil
	}
	data, err := json.MarshalIndent(indexFile{Version: ix.version, Entries: ix.entries}, "", "  ")
	ix.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(ix.path), 0755); err != nil {
		return err
	}
	if err := writeFileAtomic(ix.path, data, 0644); err != nil {
		return err
	}

	ix.mu.Lock()
	ix.dirty = false
	ix.mu.Unlock()
	return nil
}

// Get retrieves an entry by record file name.
func (ix *index) Get(name string) (*indexEntry, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	e, ok := ix.entries[name]
	return e, ok
}

// Set inserts or replaces an entry.
func (ix *index) Set(name string, e *indexEntry) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	ix.entries[name] = e
	ix.dirty = true
}

// Delete removes an entry if present.
func (ix *index) Delete(name string) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	if _, ok := ix.entries[name]; ok {
		delete(ix.entries, name)
		ix.dirty = true
	}
}

// Prune drops entries whose file name is missing from keep.
func (ix *index) Prune(keep map[string]bool) {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for name := range ix.entries {
		if !keep[name] {
			delete(ix.entries, name)
			ix.dirty = true
		}
	}
}

// Len returns the number of indexed records.
func (ix *index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.entries)
}
