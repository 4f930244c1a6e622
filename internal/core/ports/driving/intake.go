package driving

import (
	"context"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
)

// PickedFile is one file handle from a picker selection.
type PickedFile struct {
	// Name is the original file name.
	Name string

	// MIMEType is the declared content type.
	MIMEType string

	// SizeBytes is the declared size.
	SizeBytes int64

	// RelativePath is supplied by directory-aware pickers; empty for
	// plain selections.
	RelativePath string

	// Content is the handle to the file bytes.
	Content domain.Blob
}

// IntakeService normalises file-acquisition events into registry items.
type IntakeService interface {
	// AddFiles registers picker selections, one item per pick, in
	// input order. Every new item starts pending.
	AddFiles(ctx context.Context, picks []PickedFile) ([]domain.FileItem, error)

	// AddDrop registers a drop payload. Directory entries are walked
	// recursively and all discovered files are appended as one atomic
	// batch. Returns the items appended.
	AddDrop(ctx context.Context, entries []domain.DropEntry) ([]domain.FileItem, error)

	// Remove evicts an item from the registry. Absent IDs are ignored.
	Remove(ctx context.Context, id string) error

	// Clear empties the registry.
	Clear(ctx context.Context) error

	// List returns all registered items in insertion order.
	List(ctx context.Context) ([]domain.FileItem, error)
}
