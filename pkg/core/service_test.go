package core_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/padvault/pad/pkg/core"
)

// MockStore implements core.Store in memory.
// It deliberately does NOT implement core.TransactionalStore or
// core.Watchable to test the capability fallbacks.
type MockStore struct {
	pads   map[int64]core.Notepad
	nextID int64
}

func NewMockStore() *MockStore {
	return &MockStore{pads: make(map[int64]core.Notepad), nextID: 1}
}

func (m *MockStore) Create(ctx context.Context, name, content string) (core.Notepad, error) {
	now := time.Now()
	n := core.Notepad{ID: m.nextID, Name: name, Content: content, CreatedAt: now, UpdatedAt: now}
	m.pads[n.ID] = n
	m.nextID++
	return n, nil
}

func (m *MockStore) Get(ctx context.Context, id int64) (core.Notepad, error) {
	n, ok := m.pads[id]
	if !ok {
		return core.Notepad{}, core.ErrNotFound
	}
	return n, nil
}

func (m *MockStore) List(ctx context.Context) ([]core.Notepad, error) {
	var pads []core.Notepad
	for _, n := range m.pads {
		pads = append(pads, n)
	}
	return pads, nil
}

func (m *MockStore) Update(ctx context.Context, id int64, name, content string) (core.Notepad, error) {
	n, ok := m.pads[id]
	if !ok {
		return core.Notepad{}, core.ErrNotFound
	}
	n.Name = name
	n.Content = content
	n.UpdatedAt = n.UpdatedAt.Add(time.Millisecond)
	m.pads[id] = n
	return n, nil
}

func (m *MockStore) Delete(ctx context.Context, id int64) error {
	delete(m.pads, id)
	return nil
}

func (m *MockStore) Initialize(ctx context.Context) error { return nil }

func TestService_Create_Validation(t *testing.T) {
	svc := core.NewService(NewMockStore())
	ctx := context.TODO()

	t.Run("Rejects Whitespace Content", func(t *testing.T) {
		_, err := svc.Create(ctx, "Groceries", "   \n\t ")
		if !core.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		pads, _ := svc.List(ctx)
		if len(pads) != 0 {
			t.Errorf("expected no records after rejected save, got %d", len(pads))
		}
	})

	t.Run("Defaults Blank Name", func(t *testing.T) {
		n, err := svc.Create(ctx, "  ", "milk, eggs")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if n.Name != core.DefaultName {
			t.Errorf("expected %q, got %q", core.DefaultName, n.Name)
		}
	})

	t.Run("Rejects Long Name", func(t *testing.T) {
		_, err := svc.Create(ctx, strings.Repeat("x", core.MaxNameLength+1), "content")
		if !core.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("Accepts Name At Cap", func(t *testing.T) {
		name := strings.Repeat("я", core.MaxNameLength) // rune count, not bytes
		n, err := svc.Create(ctx, name, "content")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if n.Name != name {
			t.Errorf("name mangled: %q", n.Name)
		}
	})
}

func TestService_ListByRecency(t *testing.T) {
	svc := core.NewService(NewMockStore())
	ctx := context.TODO()

	a, _ := svc.Create(ctx, "a", "1")
	b, _ := svc.Create(ctx, "b", "2")
	c, _ := svc.Create(ctx, "c", "3")

	// Touch "a" so it becomes the most recent.
	if _, err := svc.Update(ctx, a.ID, "a", "1 again"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	pads, err := svc.ListByRecency(ctx)
	if err != nil {
		t.Fatalf("ListByRecency failed: %v", err)
	}
	if len(pads) != 3 {
		t.Fatalf("expected 3 notepads, got %d", len(pads))
	}
	if pads[0].ID != a.ID {
		t.Errorf("expected updated notepad first, got id %d", pads[0].ID)
	}
	for i := 1; i < len(pads); i++ {
		if pads[i].UpdatedAt.After(pads[i-1].UpdatedAt) {
			t.Errorf("order not descending at index %d", i)
		}
	}
	_ = b
	_ = c
}

func TestService_Update_Validation(t *testing.T) {
	svc := core.NewService(NewMockStore())
	ctx := context.TODO()

	n, err := svc.Create(ctx, "Groceries", "milk, eggs")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Update(ctx, n.ID, n.Name, " "); !core.IsValidation(err) {
		t.Fatalf("expected validation error for blank content, got %v", err)
	}

	got, _ := svc.Get(ctx, n.ID)
	if got.Content != "milk, eggs" {
		t.Errorf("rejected update must not mutate the record, got %q", got.Content)
	}
}

func TestService_Begin_Unsupported(t *testing.T) {
	svc := core.NewService(NewMockStore())

	err := svc.WithTransaction(context.TODO(), func(tx core.Transaction) error {
		return nil
	})
	if err == nil {
		t.Fatal("expected error for non-transactional store")
	}
}

func TestService_Watch_Unsupported(t *testing.T) {
	svc := core.NewService(NewMockStore())

	if _, err := svc.Watch(context.TODO(), ""); err == nil {
		t.Fatal("expected error for non-watchable store")
	}
}
