package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/padvault/pad/pkg/core"
)

// Store implements core.Store on the local filesystem. Each notepad lives in
// its own frontmatter+body file under <vault>/pads, keyed by an
// auto-incrementing integer id persisted in the hidden system directory.
type Store struct {
	Path   string
	config Config
	seq    *sequence
	index  *index

	// mu serializes writers so sequence allocation and index maintenance
	// stay consistent. Reads go straight to the files.
	mu sync.Mutex

	watchMu       sync.Mutex
	watcherActive bool
}

// Config holds the configuration for the filesystem store.
type Config struct {
	Path string

	// AutoInit creates the vault directory when it is missing. Without it,
	// Initialize fails on a missing vault. MustExist additionally refuses a
	// missing vault even when AutoInit is set.
	AutoInit  bool
	MustExist bool
	Logger    *slog.Logger
	SystemDir string // hidden state directory, e.g. ".pad"

	// ErrorHandler receives runtime watcher failures that would otherwise
	// only be logged.
	ErrorHandler func(error)

	// Debounce is the quiet period applied to watch events. Zero means the
	// default (50ms).
	Debounce time.Duration
}

// NewStore creates a new filesystem-backed store. Call Initialize before use.
func NewStore(config Config) *Store {
	if config.SystemDir == "" {
		config.SystemDir = ".pad"
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}
	if config.Debounce <= 0 {
		config.Debounce = 50 * time.Millisecond
	}
	systemPath := filepath.Join(config.Path, config.SystemDir)
	return &Store{
		Path:   config.Path,
		config: config,
		seq:    newSequence(filepath.Join(systemPath, "sequence")),
		index:  newIndex(filepath.Join(systemPath, "index.json")),
	}
}

// padsDir is the directory holding one file per record.
func (s *Store) padsDir() string {
	return filepath.Join(s.Path, "pads")
}

// Initialize prepares the vault layout and loads the sequence state.
// Failures surface as core.ErrUnavailable so callers can classify them.
func (s *Store) Initialize(ctx context.Context) error {
	info, err := os.Stat(s.Path)
	switch {
	case os.IsNotExist(err):
		if s.config.MustExist || !s.config.AutoInit {
			return fmt.Errorf("%w: vault path does not exist: %s", core.ErrUnavailable, s.Path)
		}
	case err != nil:
		return fmt.Errorf("%w: %v", core.ErrUnavailable, err)
	case !info.IsDir():
		return fmt.Errorf("%w: vault path is not a directory: %s", core.ErrUnavailable, s.Path)
	}

	for _, dir := range []string{s.padsDir(), filepath.Join(s.Path, s.config.SystemDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: failed to create %s: %v", core.ErrUnavailable, dir, err)
		}
	}

	if err := s.seq.load(); err != nil {
		return fmt.Errorf("%w: failed to load sequence: %v", core.ErrUnavailable, err)
	}

	// A corrupt or missing index self-heals: List rebuilds it from files.
	if err := s.index.Load(); err != nil {
		s.config.Logger.Warn("index unreadable, starting fresh", "error", err)
	}

	s.config.Logger.Debug("vault initialized", "path", s.Path, "next_id", s.seq.peek())
	return nil
}

// Create persists a new notepad under the next sequence id.
func (s *Store) Create(ctx context.Context, name, content string) (core.Notepad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.seq.allocate()
	if err != nil {
		return core.Notepad{}, fmt.Errorf("failed to allocate id: %w", err)
	}

	now := time.Now()
	n := core.Notepad{
		ID:        id,
		Name:      name,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.writeRecord(n); err != nil {
		return core.Notepad{}, err
	}

	s.config.Logger.Debug("notepad created", "id", n.ID, "name", n.Name)
	return n, nil
}

// Get retrieves a notepad by id.
func (s *Store) Get(ctx context.Context, id int64) (core.Notepad, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return core.Notepad{}, core.ErrNotFound
		}
		return core.Notepad{}, fmt.Errorf("failed to read notepad %d: %w", id, err)
	}

	n, err := decodeRecord(data, id)
	if err != nil {
		return core.Notepad{}, fmt.Errorf("failed to parse notepad %d: %w", id, err)
	}
	return n, nil
}

// Update overwrites an existing notepad, refreshing UpdatedAt.
// UpdatedAt is guaranteed to move strictly forward even when the clock
// has not advanced past the previous value.
func (s *Store) Update(ctx context.Context, id int64, name, content string) (core.Notepad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, err := s.Get(ctx, id)
	if err != nil {
		return core.Notepad{}, err
	}

	now := time.Now()
	if !now.After(prev.UpdatedAt) {
		now = prev.UpdatedAt.Add(time.Nanosecond)
	}

	n := core.Notepad{
		ID:        id,
		Name:      name,
		Content:   content,
		CreatedAt: prev.CreatedAt,
		UpdatedAt: now,
	}

	if err := s.writeRecord(n); err != nil {
		return core.Notepad{}, err
	}

	s.config.Logger.Debug("notepad updated", "id", n.ID)
	return n, nil
}

// Delete removes a notepad. Deleting an absent id succeeds.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.recordPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove notepad %d: %w", id, err)
	}

	s.index.Delete(recordFilename(id))
	if err := s.index.Save(); err != nil {
		s.config.Logger.Warn("failed to persist index", "error", err)
	}

	s.config.Logger.Debug("notepad deleted", "id", id)
	return nil
}

// List scans the pads directory and returns every record, keeping the
// metadata index in sync as a side effect. Order is unspecified beyond
// being deterministic (ascending id).
func (s *Store) List(ctx context.Context) ([]core.Notepad, error) {
	entries, err := os.ReadDir(s.padsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: vault not initialized at %s", core.ErrUnavailable, s.Path)
		}
		return nil, err
	}

	seen := make(map[string]bool)
	pads := make([]core.Notepad, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, ok := parseRecordFilename(e.Name())
		if !ok {
			continue
		}

		n, err := s.Get(ctx, id)
		if err != nil {
			// Skip unparseable files rather than failing the whole listing.
			s.config.Logger.Warn("skipping unreadable record", "file", e.Name(), "error", err)
			continue
		}
		pads = append(pads, n)
		seen[e.Name()] = true

		if info, err := e.Info(); err == nil {
			s.index.Set(e.Name(), &indexEntry{
				ID:           n.ID,
				Name:         n.Name,
				CreatedAt:    n.CreatedAt,
				UpdatedAt:    n.UpdatedAt,
				LastModified: info.ModTime(),
			})
		}
	}

	sort.Slice(pads, func(i, j int) bool { return pads[i].ID < pads[j].ID })

	s.index.Prune(seen)
	if err := s.index.Save(); err != nil {
		s.config.Logger.Warn("failed to persist index", "error", err)
	}

	return pads, nil
}

// Begin starts a new staged transaction.
func (s *Store) Begin(ctx context.Context) (core.Transaction, error) {
	return newTransaction(s), nil
}

// writeRecord serializes and atomically writes one record, then refreshes
// its index entry. Callers hold s.mu.
func (s *Store) writeRecord(n core.Notepad) error {
	data, err := encodeRecord(n)
	if err != nil {
		return fmt.Errorf("failed to serialize notepad %d: %w", n.ID, err)
	}

	path := s.recordPath(n.ID)
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write notepad %d: %w", n.ID, err)
	}

	mtime := time.Now()
	if info, err := os.Stat(path); err == nil {
		mtime = info.ModTime()
	}
	s.index.Set(recordFilename(n.ID), &indexEntry{
		ID:           n.ID,
		Name:         n.Name,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
		LastModified: mtime,
	})
	if err := s.index.Save(); err != nil {
		s.config.Logger.Warn("failed to persist index", "error", err)
	}
	return nil
}

func (s *Store) recordPath(id int64) string {
	return filepath.Join(s.padsDir(), recordFilename(id))
}

var _ core.TransactionalStore = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
