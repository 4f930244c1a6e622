package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
)

func item(id, name string) domain.FileItem {
	return domain.FileItem{ID: id, Name: name, Status: domain.StatusPending}
}

func TestFileRegistry_AppendPreservesOrder(t *testing.T) {
	r := NewFileRegistry()
	ctx := context.Background()

	require.NoError(t, r.Append(ctx, []domain.FileItem{item("1", "a.pdf"), item("2", "b.pdf")}))
	require.NoError(t, r.Append(ctx, []domain.FileItem{item("3", "c.pdf")}))

	items, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "a.pdf", items[0].Name)
	assert.Equal(t, "b.pdf", items[1].Name)
	assert.Equal(t, "c.pdf", items[2].Name)
}

func TestFileRegistry_Remove(t *testing.T) {
	r := NewFileRegistry()
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, []domain.FileItem{item("1", "a.pdf"), item("2", "b.pdf")}))

	t.Run("removes existing item", func(t *testing.T) {
		require.NoError(t, r.Remove(ctx, "1"))
		items, _ := r.List(ctx)
		require.Len(t, items, 1)
		assert.Equal(t, "2", items[0].ID)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		require.NoError(t, r.Remove(ctx, "missing"))
		items, _ := r.List(ctx)
		assert.Len(t, items, 1)
	})
}

func TestFileRegistry_Clear(t *testing.T) {
	r := NewFileRegistry()
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, []domain.FileItem{item("1", "a.pdf")}))

	require.NoError(t, r.Clear(ctx))
	items, _ := r.List(ctx)
	assert.Empty(t, items)
}

func TestFileRegistry_Get(t *testing.T) {
	r := NewFileRegistry()
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, []domain.FileItem{item("1", "a.pdf")}))

	t.Run("found", func(t *testing.T) {
		got, err := r.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "a.pdf", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := r.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returned item is a copy", func(t *testing.T) {
		got, err := r.Get(ctx, "1")
		require.NoError(t, err)
		got.Name = "mutated"

		again, err := r.Get(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, "a.pdf", again.Name)
	})
}

func TestFileRegistry_UpdateWhere(t *testing.T) {
	r := NewFileRegistry()
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, []domain.FileItem{
		item("1", "a.pdf"),
		item("2", "b.pdf"),
		{ID: "3", Name: "c.pdf", Status: domain.StatusTranslated},
	}))

	n, err := r.UpdateWhere(ctx,
		func(it domain.FileItem) bool { return it.Status == domain.StatusPending },
		func(it *domain.FileItem) { it.Status = domain.StatusTranslating })
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	items, _ := r.List(ctx)
	assert.Equal(t, domain.StatusTranslating, items[0].Status)
	assert.Equal(t, domain.StatusTranslating, items[1].Status)
	assert.Equal(t, domain.StatusTranslated, items[2].Status)

	// Order is unchanged after an update pass.
	assert.Equal(t, []string{"1", "2", "3"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestFileRegistry_ListReturnsCopy(t *testing.T) {
	r := NewFileRegistry()
	ctx := context.Background()
	require.NoError(t, r.Append(ctx, []domain.FileItem{item("1", "a.pdf")}))

	items, _ := r.List(ctx)
	items[0].Name = "mutated"

	again, _ := r.List(ctx)
	assert.Equal(t, "a.pdf", again[0].Name)
}
