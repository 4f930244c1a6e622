// Package memory provides the in-memory file registry. The registry is
// process-lifetime state: it starts empty and is discarded wholesale on
// exit.
package memory

import (
	"context"
	"sync"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
)

// Ensure FileRegistry implements the interface.
var _ driven.FileRegistry = (*FileRegistry)(nil)

// FileRegistry is an in-memory implementation of driven.FileRegistry.
// Items are kept in insertion order; the mutex provides the
// single-writer-at-a-time semantics the core relies on.
type FileRegistry struct {
	mu    sync.RWMutex
	items []domain.FileItem
}

// NewFileRegistry creates a new empty registry.
func NewFileRegistry() *FileRegistry {
	return &FileRegistry{}
}

// Append adds new items to the end of the registry.
func (r *FileRegistry) Append(_ context.Context, items []domain.FileItem) error {
	if len(items) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, items...)
	return nil
}

// Remove deletes the item with the given ID. Absent IDs are ignored.
func (r *FileRegistry) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// Clear empties the registry.
func (r *FileRegistry) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

// Get retrieves an item by ID.
func (r *FileRegistry) Get(_ context.Context, id string) (*domain.FileItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns a copy of all items in insertion order.
func (r *FileRegistry) List(_ context.Context) ([]domain.FileItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.FileItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// UpdateWhere applies mutate to every matching item in place, without
// reordering. Non-matching items are untouched.
func (r *FileRegistry) UpdateWhere(
	_ context.Context,
	match func(domain.FileItem) bool,
	mutate func(*domain.FileItem),
) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	updated := 0
	for i := range r.items {
		if match(r.items[i]) {
			mutate(&r.items[i])
			updated++
		}
	}
	return updated, nil
}
