package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindRoot(t *testing.T) {
	baseDir := t.TempDir()
	vaultDir := filepath.Join(baseDir, "vault")
	nestedDir := filepath.Join(vaultDir, "pads")
	emptyDir := filepath.Join(baseDir, "empty")

	if err := os.MkdirAll(nestedDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(emptyDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(vaultDir, ".pad"), 0755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		wantRoot  string
		wantErr   bool
	}{
		{"From Root Itself", vaultDir, vaultDir, false},
		{"From Nested Directory", nestedDir, vaultDir, false},
		{"Outside Any Vault", emptyDir, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindRoot(tt.startPath)
			if tt.wantErr {
				if !errors.Is(err, ErrRootNotFound) {
					t.Fatalf("expected ErrRootNotFound, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindRoot failed: %v", err)
			}
			if got != tt.wantRoot {
				t.Errorf("FindRoot(%s) = %s, want %s", tt.startPath, got, tt.wantRoot)
			}
		})
	}
}
