package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driving"
	"github.com/polyglot-labs/polyglot-cli/internal/logger"
)

// Ensure Intake implements the interface.
var _ driving.IntakeService = (*Intake)(nil)

// Intake normalises picker selections and drop payloads into registry
// items.
type Intake struct {
	registry driven.FileRegistry
}

// NewIntake creates a new intake service.
func NewIntake(registry driven.FileRegistry) *Intake {
	return &Intake{registry: registry}
}

// AddFiles registers picker selections, one item per pick, in input
// order.
func (s *Intake) AddFiles(ctx context.Context, picks []driving.PickedFile) ([]domain.FileItem, error) {
	if len(picks) == 0 {
		return nil, nil
	}

	items := make([]domain.FileItem, 0, len(picks))
	for _, p := range picks {
		items = append(items, newItem(p.Name, p.MIMEType, p.SizeBytes, p.RelativePath, p.Content))
	}

	if err := s.registry.Append(ctx, items); err != nil {
		return nil, err
	}
	logger.Debug("Registered %d picked files", len(items))
	return items, nil
}

// AddDrop registers a drop payload. Top-level files keep an empty
// relative path; directories are walked recursively and sibling
// subtrees are scanned concurrently. All discovered files are appended
// to the registry as one atomic batch so a concurrent drop or picker
// event can never interleave with this one.
func (s *Intake) AddDrop(ctx context.Context, entries []domain.DropEntry) ([]domain.FileItem, error) {
	collected := make([][]domain.FileItem, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		switch e := entry.(type) {
		case domain.FileEntry:
			collected[i] = []domain.FileItem{
				newItem(e.Name(), e.MIMEType(), e.Size(), "", e.Content()),
			}
		case domain.DirEntry:
			wg.Add(1)
			go func(slot int, dir domain.DirEntry) {
				defer wg.Done()
				collected[slot] = scanTree(ctx, dir)
			}(i, e)
		default:
			// Neither file nor directory: ignored.
		}
	}
	wg.Wait()

	var items []domain.FileItem
	for _, batch := range collected {
		items = append(items, batch...)
	}
	if len(items) == 0 {
		return nil, nil
	}

	if err := s.registry.Append(ctx, items); err != nil {
		return nil, err
	}
	logger.Debug("Registered %d dropped files", len(items))
	return items, nil
}

// Remove evicts an item from the registry.
func (s *Intake) Remove(ctx context.Context, id string) error {
	return s.registry.Remove(ctx, id)
}

// Clear empties the registry.
func (s *Intake) Clear(ctx context.Context) error {
	return s.registry.Clear(ctx)
}

// List returns all registered items in insertion order.
func (s *Intake) List(ctx context.Context) ([]domain.FileItem, error) {
	return s.registry.List(ctx)
}

// scanTree walks a dropped directory depth-first using an explicit
// worklist. Each directory is drained with repeated Read calls until it
// reports io.EOF, so a partial listing can never truncate the walk. A
// subtree whose read fails is skipped; the rest of the drop survives.
func scanTree(ctx context.Context, root domain.DirEntry) []domain.FileItem {
	type frame struct {
		dir  domain.DirEntry
		path string
	}

	stack := []frame{{dir: root, path: root.Name()}}
	var items []domain.FileItem

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for {
			batch, err := f.dir.Read(ctx)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				logger.Warn("Skipping directory %s: %v", f.path, err)
				break
			}
			for _, entry := range batch {
				switch e := entry.(type) {
				case domain.FileEntry:
					items = append(items, newItem(e.Name(), e.MIMEType(), e.Size(), f.path, e.Content()))
				case domain.DirEntry:
					stack = append(stack, frame{dir: e, path: f.path + "/" + e.Name()})
				}
			}
		}
	}
	return items
}

// newItem builds a fresh pending item with a unique ID.
func newItem(name, mimeType string, size int64, relPath string, content domain.Blob) domain.FileItem {
	return domain.FileItem{
		ID:           uuid.New().String(),
		Name:         name,
		MIMEType:     mimeType,
		SizeBytes:    size,
		RelativePath: relPath,
		Content:      content,
		Status:       domain.StatusPending,
	}
}
