package driven

import (
	"context"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
)

// FileRegistry is the canonical in-memory collection of file items.
// It preserves insertion order and provides single-writer semantics;
// it holds process-lifetime state with no persistence.
type FileRegistry interface {
	// Append adds new items to the end of the registry. Existing items
	// are never mutated.
	Append(ctx context.Context, items []domain.FileItem) error

	// Remove deletes the item with the given ID. Removing an absent ID
	// is a no-op, not an error.
	Remove(ctx context.Context, id string) error

	// Clear empties the registry.
	Clear(ctx context.Context) error

	// Get retrieves an item by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.FileItem, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]domain.FileItem, error)

	// UpdateWhere applies mutate to every item matching the predicate,
	// without reordering items or touching non-matching ones. It
	// returns the number of items mutated.
	UpdateWhere(ctx context.Context, match func(domain.FileItem) bool, mutate func(*domain.FileItem)) (int, error)
}
