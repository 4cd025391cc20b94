// Package editor hands record content to the user's $EDITOR through a
// temporary file.
package editor

import (
	"fmt"
	"os"
	"os/exec"
)

// Open writes initial to a temp file, launches the user's editor on it, and
// returns the edited content.
func Open(initial string) (string, error) {
	ed := os.Getenv("EDITOR")
	if ed == "" {
		if p, err := exec.LookPath("nano"); err == nil {
			ed = p
		} else if p, err := exec.LookPath("vi"); err == nil {
			ed = p
		} else {
			return "", fmt.Errorf("no editor found: set $EDITOR")
		}
	}

	tmp, err := os.CreateTemp("", "pad-edit-*.md")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.WriteString(initial); err != nil {
		return "", err
	}
	if err := tmp.Sync(); err != nil {
		return "", err
	}

	cmd := exec.Command(ed, tmpName)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	b, err := os.ReadFile(tmpName)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
