package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound indicates no enclosing vault root was found.
var ErrRootNotFound = errors.New("vault root not found")

// FindRoot walks upwards from startDir looking for a vault root, indicated
// by a .pad directory. Returns the absolute path to the root.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasEntry(dir, ".pad") {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

func hasEntry(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
