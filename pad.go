package pad

import (
	"log/slog"
	"time"

	"github.com/padvault/pad/internal/platform"
	"github.com/padvault/pad/pkg/core"
)

// Version is the library and CLI version.
const Version = "0.1.0"

// --- Types ---

// Notepad is a public alias for the core record type.
type Notepad = core.Notepad

// Event is a public alias for the store change event.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring a vault.
type Option = platform.Option

// WithAutoInit enables automatic initialization of the vault layout.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist requires the vault directory to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithForceTemp forces the vault into a temporary directory (useful for
// examples and tests).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore injects a custom storage backend.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAdapter selects the storage adapter by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithSystemDir overrides the hidden state directory name (e.g. ".pad").
func WithSystemDir(name string) Option {
	return platform.WithSystemDir(name)
}

// WithDebounce overrides the watcher debounce window.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watch loop errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a notepad service bound to the vault at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init builds and initializes a store explicitly, without wrapping it in a
// service.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// --- Utils ---

// ResolveVaultPath expands and absolutizes a vault path, optionally
// redirecting it into a temporary directory.
func ResolveVaultPath(path string, forceTemp bool) (string, error) {
	return platform.ResolveVaultPath(path, forceTemp)
}

// FindVaultRoot walks upwards from startDir looking for a vault root.
func FindVaultRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}
