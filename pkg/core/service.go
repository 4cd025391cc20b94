package core

import (
	"context"
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// Service handles the business logic for notepads: input validation, name
// defaulting, and presentation ordering. Persistence is delegated to the
// injected Store, which is constructed once at the application root.
type Service struct {
	store Store
}

// NewService creates a new Service around an initialized store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates input and persists a new notepad.
// Whitespace-only content is rejected; a blank name falls back to
// DefaultName; names longer than MaxNameLength runes are rejected.
func (s *Service) Create(ctx context.Context, name, content string) (Notepad, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Notepad{}, err
	}
	if err := ValidateContent(content); err != nil {
		return Notepad{}, err
	}
	return s.store.Create(ctx, name, content)
}

// Get retrieves a notepad by id.
func (s *Service) Get(ctx context.Context, id int64) (Notepad, error) {
	return s.store.Get(ctx, id)
}

// List retrieves all notepads in store order.
func (s *Service) List(ctx context.Context) ([]Notepad, error) {
	return s.store.List(ctx)
}

// ListByRecency retrieves all notepads sorted by UpdatedAt descending,
// the order the side panel displays.
func (s *Service) ListByRecency(ctx context.Context) ([]Notepad, error) {
	pads, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(pads, func(i, j int) bool {
		return pads[i].UpdatedAt.After(pads[j].UpdatedAt)
	})
	return pads, nil
}

// Update validates input and overwrites an existing notepad.
func (s *Service) Update(ctx context.Context, id int64, name, content string) (Notepad, error) {
	name, err := normalizeName(name)
	if err != nil {
		return Notepad{}, err
	}
	if err := ValidateContent(content); err != nil {
		return Notepad{}, err
	}
	return s.store.Update(ctx, id, name, content)
}

// Delete removes a notepad. Absence of the id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// WithTransaction executes fn inside a staged transaction, committing on
// success and rolling back when fn returns an error.
func (s *Service) WithTransaction(ctx context.Context, fn func(tx Transaction) error) error {
	ts, ok := s.store.(TransactionalStore)
	if !ok {
		return errors.New("store does not support transactions")
	}

	tx, err := ts.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// Watch observes store changes if the store supports it.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx, pattern)
}

// NormalizeName trims whitespace and substitutes DefaultName for blank
// names. It does not length-check; see ValidateName.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	return name
}

// ValidateName rejects names longer than MaxNameLength runes.
func ValidateName(name string) error {
	if utf8.RuneCountInString(name) > MaxNameLength {
		return &ValidationError{Field: "name", Reason: "longer than 50 characters"}
	}
	return nil
}

// ValidateContent rejects empty or whitespace-only content.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Reason: "empty"}
	}
	return nil
}

func normalizeName(name string) (string, error) {
	name = NormalizeName(name)
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
