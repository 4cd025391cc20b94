package core

import "context"

// Store defines the contract for durable notepad persistence.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (filesystem, SQL, in-memory fakes).
type Store interface {
	// Create persists a new notepad, assigning the next id and setting both
	// timestamps to the same instant. It returns the stored record.
	Create(ctx context.Context, name, content string) (Notepad, error)

	// Get retrieves a notepad by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, id int64) (Notepad, error)

	// List returns every stored notepad. Order is unspecified; callers sort.
	List(ctx context.Context) ([]Notepad, error)

	// Update overwrites name and content of an existing notepad and
	// refreshes UpdatedAt. Returns ErrNotFound when the id does not exist.
	Update(ctx context.Context, id int64, name, content string) (Notepad, error)

	// Delete removes a notepad by id. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int64) error

	// Initialize ensures the underlying storage is ready (directories,
	// sequence state). The factory calls it before handing the store out.
	Initialize(ctx context.Context) error
}

// Transaction defines the contract for a staged unit of work.
// Changes are invisible to the store until Commit.
type Transaction interface {
	// Save stages a notepad for persistence. A zero ID stages a create;
	// a non-zero ID stages an overwrite of that record.
	Save(ctx context.Context, n Notepad) error

	// Delete stages a removal.
	Delete(ctx context.Context, id int64) error

	// Commit applies all staged changes.
	Commit(ctx context.Context) error

	// Rollback discards all staged changes.
	Rollback(ctx context.Context) error
}

// TransactionalStore extends Store with staged batch writes.
type TransactionalStore interface {
	Store

	// Begin starts a new transaction.
	Begin(ctx context.Context) (Transaction, error)
}

// Watchable is implemented by stores that can report external changes.
type Watchable interface {
	// Watch emits an Event per observed change. The pattern is a doublestar
	// glob matched against notepad names; empty matches everything.
	// The channel closes when ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
