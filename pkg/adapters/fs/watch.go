package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/padvault/pad/pkg/core"
)

// Watch emits one core.Event per observed change to the pads directory,
// debounced so editors that write in bursts produce a single event.
// The pattern is a doublestar glob matched against notepad names; empty
// matches everything. The channel closes when ctx is cancelled.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.padsDir()); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.padsDir(), err)
	}

	events := make(chan core.Event, 16)
	deb := newDebouncer(s.config.Debounce)
	s.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer watcher.Close()
		defer deb.stopAndWait(5 * time.Second)
		defer s.setWatcherActive(false)

		for {
			select {
			case <-ctx.Done():
				return nil

			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				e, match := s.mapEvent(ev, pattern)
				if !match {
					continue
				}
				deb.add(ev.Name, func() {
					select {
					case events <- e:
					case <-ctx.Done():
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				s.config.Logger.Error("fsnotify error", "error", err)
				if s.config.ErrorHandler != nil {
					s.config.ErrorHandler(err)
				}
			}
		}
	}, lifecycle.WithErrorHandler(func(err error) {
		s.config.Logger.Error("watcher terminated", "error", err)
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(err)
		}
	}))

	return events, nil
}

// mapEvent translates a raw filesystem event into a store event, filtering
// out temp files, strays, and names the pattern does not match.
func (s *Store) mapEvent(ev fsnotify.Event, pattern string) (core.Event, bool) {
	base := filepath.Base(ev.Name)
	if strings.HasPrefix(base, tempFilePrefix) {
		return core.Event{}, false
	}
	id, ok := parseRecordFilename(base)
	if !ok {
		return core.Event{}, false
	}

	var eType core.EventType
	var name string

	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		eType = core.EventDeleted
		if entry, ok := s.index.Get(base); ok {
			name = entry.Name
		}
	case ev.Has(fsnotify.Create):
		// Atomic writes land as a rename onto the target, so a Create of a
		// file the index already knows is an update.
		eType = core.EventCreated
		if entry, ok := s.index.Get(base); ok {
			eType = core.EventUpdated
			name = entry.Name
		}
	case ev.Has(fsnotify.Write):
		eType = core.EventUpdated
		if entry, ok := s.index.Get(base); ok {
			name = entry.Name
		}
	default:
		return core.Event{}, false
	}

	if name == "" {
		if n, err := s.Get(context.Background(), id); err == nil {
			name = n.Name
		}
	}

	if pattern != "" {
		matched, err := doublestar.Match(pattern, name)
		if err != nil || !matched {
			return core.Event{}, false
		}
	}

	return core.Event{
		Type:      eType,
		ID:        id,
		Name:      name,
		Timestamp: time.Now().Unix(),
	}, true
}

func (s *Store) setWatcherActive(active bool) {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	s.watcherActive = active
}

func (s *Store) isWatcherActive() bool {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	return s.watcherActive
}

// debouncer coalesces bursts of events per key into one callback after a
// quiet period.
type debouncer struct {
	delay  time.Duration
	mu     sync.Mutex
	timers map[string]*time.Timer
	wg     sync.WaitGroup
	closed bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	if t, ok := d.timers[key]; ok {
		if t.Stop() {
			// Timer had not fired yet; release its pending waitgroup slot.
			d.wg.Done()
		}
	}
	d.wg.Add(1)
	d.timers[key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()
		d.mu.Lock()
		delete(d.timers, key)
		d.mu.Unlock()
		fn()
	})
}

// stopAndWait blocks new events and waits for in-flight timers to fire,
// bounded by timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}
