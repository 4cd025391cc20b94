package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/padvault/pad/pkg/adapters/fs"
	"github.com/padvault/pad/pkg/core"
)

// Init resolves the vault path, builds the configured store, and runs its
// initialization. It returns the ready-to-use core.Store.
func Init(path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		if err := o.store.Initialize(context.Background()); err != nil {
			return nil, err
		}
		return o.store, nil
	}

	var store core.Store
	var err error

	switch o.adapter {
	case "fs":
		store, err = initFS(path, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

// initFS builds the filesystem adapter from the parsed options.
func initFS(path string, o *options) (core.Store, error) {
	autoInit, _ := o.config["auto_init"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	tempDir, _ := o.config["temp_dir"].(bool)
	systemDir, _ := o.config["system_dir"].(string)
	debounce, _ := o.config["debounce"].(time.Duration)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	resolvedPath, err := ResolveVaultPath(path, tempDir)
	if err != nil {
		return nil, err
	}

	if tempDir && o.logger != nil {
		o.logger.Warn("running against a temporary vault", "original_path", path, "resolved_path", resolvedPath)
	}

	return fs.NewStore(fs.Config{
		Path:         resolvedPath,
		AutoInit:     autoInit || tempDir,
		MustExist:    mustExist,
		Logger:       o.logger,
		SystemDir:    systemDir,
		Debounce:     debounce,
		ErrorHandler: errorHandler,
	}), nil
}

// ResolveVaultPath expands and absolutizes the vault path. When useTemp is
// set, the vault is redirected into a fresh directory under the system temp
// dir, keyed by the original path's base name.
func ResolveVaultPath(path string, useTemp bool) (string, error) {
	if useTemp {
		base := filepath.Base(filepath.Clean(path))
		if base == "." || base == string(filepath.Separator) {
			base = "vault"
		}
		dir, err := os.MkdirTemp("", "pad-"+base+"-")
		if err != nil {
			return "", fmt.Errorf("failed to create temp vault: %w", err)
		}
		return dir, nil
	}

	expanded, err := ExpandHome(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve vault path: %w", err)
	}
	return abs, nil
}

// ExpandHome replaces a leading ~ with the current user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" || len(path) > 1 && path[0] == '~' && os.IsPathSeparator(path[1]) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}
