package platform

import (
	"log/slog"
	"time"

	"github.com/padvault/pad/pkg/core"
)

// options holds the internal configuration assembled from functional options.
type options struct {
	store   core.Store
	logger  *slog.Logger
	adapter string
	config  map[string]any
}

// Option defines a functional option for configuring a vault.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:   nil,
		logger:  nil,
		adapter: "fs",
		config:  make(map[string]any),
	}
}

// WithAutoInit enables automatic initialization of the vault directory
// layout when it does not exist yet.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.config["auto_init"] = auto
	}
}

// WithMustExist requires the vault directory to already exist.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithForceTemp forces the vault into a temporary directory (useful for
// examples and tests that must not touch real data).
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.config["temp_dir"] = force
	}
}

// WithLogger sets the logger for the store and service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a custom storage backend (e.g. an in-memory fake).
// If provided, the default filesystem adapter is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter selects the storage adapter by name. Defaults to "fs".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithSystemDir overrides the hidden directory name holding the sequence
// and index files. Defaults to ".pad".
func WithSystemDir(name string) Option {
	return func(o *options) {
		o.config["system_dir"] = name
	}
}

// WithDebounce overrides the watcher debounce window.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.config["debounce"] = d
	}
}

// WithWatcherErrorHandler registers a callback for errors occurring inside
// the watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
