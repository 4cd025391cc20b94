package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIndex(t *testing.T) {
	t.Run("Save And Reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".pad", "index.json")
		ix := newIndex(path)
		if err := ix.Load(); err != nil {
			t.Fatal(err)
		}

		now := time.Now()
		ix.Set("1.md", &indexEntry{ID: 1, Name: "alpha", CreatedAt: now, UpdatedAt: now, LastModified: now})
		ix.Set("2.md", &indexEntry{ID: 2, Name: "beta", CreatedAt: now, UpdatedAt: now, LastModified: now})
		if err := ix.Save(); err != nil {
			t.Fatal(err)
		}

		reloaded := newIndex(path)
		if err := reloaded.Load(); err != nil {
			t.Fatal(err)
		}
		if reloaded.Len() != 2 {
			t.Fatalf("expected 2 entries after reload, got %d", reloaded.Len())
		}
		e, ok := reloaded.Get("1.md")
		if !ok || e.Name != "alpha" || e.ID != 1 {
			t.Errorf("entry lost in round trip: %+v", e)
		}
	})

	t.Run("Save Is A Noop When Clean", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.json")
		ix := newIndex(path)
		if err := ix.Save(); err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("clean save must not touch disk")
		}
	})

	t.Run("Corrupt File Leaves Usable Index", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "index.json")
		if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
			t.Fatal(err)
		}

		ix := newIndex(path)
		if err := ix.Load(); err == nil {
			t.Error("expected a corruption error")
		}
		if ix.Len() != 0 {
			t.Errorf("corrupt load must leave an empty index, got %d entries", ix.Len())
		}
		// The index still accepts writes afterwards.
		ix.Set("1.md", &indexEntry{ID: 1, Name: "recovered"})
		if err := ix.Save(); err != nil {
			t.Errorf("save after corrupt load failed: %v", err)
		}
	})

	t.Run("Prune Drops Stale Entries", func(t *testing.T) {
		ix := newIndex(filepath.Join(t.TempDir(), "index.json"))
		ix.Set("1.md", &indexEntry{ID: 1, Name: "alpha"})
		ix.Set("2.md", &indexEntry{ID: 2, Name: "beta"})

		ix.Prune(map[string]bool{"1.md": true})
		if ix.Len() != 1 {
			t.Fatalf("expected 1 entry after prune, got %d", ix.Len())
		}
		if _, ok := ix.Get("2.md"); ok {
			t.Error("pruned entry still present")
		}
	})
}
