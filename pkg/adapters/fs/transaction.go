package fs

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/padvault/pad/pkg/core"
)

// transaction implements core.Transaction by staging writes in memory and
// applying them under the store's write lock on Commit. Staged creates
// (zero ID) receive their sequence ids only at commit time.
type transaction struct {
	store   *Store
	mu      sync.Mutex
	creates []core.Notepad
	staged  map[int64]core.Notepad
	deleted map[int64]bool
	closed  bool
}

func newTransaction(store *Store) *transaction {
	return &transaction{
		store:   store,
		staged:  make(map[int64]core.Notepad),
		deleted: make(map[int64]bool),
	}
}

// Save stages a notepad. Zero ID stages a create.
func (t *transaction) Save(ctx context.Context, n core.Notepad) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("transaction closed")
	}

	if n.ID == 0 {
		t.creates = append(t.creates, n)
		return nil
	}
	t.staged[n.ID] = n
	delete(t.deleted, n.ID)
	return nil
}

// Delete stages a removal.
func (t *transaction) Delete(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("transaction closed")
	}

	t.deleted[id] = true
	delete(t.staged, id)
	return nil
}

// Commit applies all staged changes in one pass under the store lock.
func (t *transaction) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("transaction already closed")
	}
	t.closed = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	now := time.Now()

	for _, n := range t.creates {
		id, err := t.store.seq.allocate()
		if err != nil {
			return fmt.Errorf("failed to allocate id: %w", err)
		}
		n.ID = id
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = n.CreatedAt
		}
		if err := t.store.writeRecord(n); err != nil {
			return err
		}
	}

	for id, n := range t.staged {
		n.ID = id
		if n.CreatedAt.IsZero() {
			n.CreatedAt = now
		}
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = now
		}
		if err := t.store.writeRecord(n); err != nil {
			return err
		}
	}

	for id := range t.deleted {
		if err := os.Remove(t.store.recordPath(id)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove notepad %d: %w", id, err)
		}
		t.store.index.Delete(recordFilename(id))
	}

	if err := t.store.index.Save(); err != nil {
		t.store.config.Logger.Warn("failed to persist index", "error", err)
	}
	return nil
}

// Rollback discards all staged changes.
func (t *transaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.creates = nil
	t.staged = nil
	t.deleted = nil
	t.closed = true
	return nil
}

var _ core.Transaction = (*transaction)(nil)
