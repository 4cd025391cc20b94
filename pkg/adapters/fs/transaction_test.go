package fs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padvault/pad/pkg/core"
)

func TestTransaction_Commit(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	existing, err := store.Create(ctx, "keep", "original")
	require.NoError(t, err)
	doomed, err := store.Create(ctx, "doomed", "bye")
	require.NoError(t, err)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)

	// Zero id stages a create, non-zero an overwrite.
	require.NoError(t, tx.Save(ctx, core.Notepad{Name: "imported", Content: "fresh"}))
	require.NoError(t, tx.Save(ctx, core.Notepad{ID: existing.ID, Name: "keep", Content: "rewritten"}))
	require.NoError(t, tx.Delete(ctx, doomed.ID))

	// Nothing is visible before commit.
	pads, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, pads, 2)
	got, err := store.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Content)

	require.NoError(t, tx.Commit(ctx))

	pads, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, pads, 2)

	got, err = store.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", got.Content)

	_, err = store.Get(ctx, doomed.ID)
	assert.ErrorIs(t, err, core.ErrNotFound)

	created, err := store.Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "imported", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestTransaction_Rollback(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	existing, err := store.Create(ctx, "keep", "original")
	require.NoError(t, err)

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Save(ctx, core.Notepad{Name: "ghost", Content: "never lands"}))
	require.NoError(t, tx.Delete(ctx, existing.ID))
	require.NoError(t, tx.Rollback(ctx))

	pads, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, pads, 1)
	assert.Equal(t, "original", pads[0].Content)
}

func TestTransaction_ClosedRejectsFurtherUse(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	assert.Error(t, tx.Save(ctx, core.Notepad{Name: "late"}))
	assert.Error(t, tx.Commit(ctx))
}

func TestTransaction_DeleteAbsentIsHarmless(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	tx, err := store.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Delete(ctx, 999))
	require.NoError(t, tx.Commit(ctx))
}
