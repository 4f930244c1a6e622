// Package localdir delivers downloaded artifacts into a local output
// directory.
package localdir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.ArtifactSink = (*Sink)(nil)

// Sink writes artifacts into a directory.
type Sink struct {
	dir string
}

// New creates a sink rooted at dir, creating it if needed.
// An empty dir defaults to the current directory.
func New(dir string) (*Sink, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return &Sink{dir: dir}, nil
}

// Dir returns the output directory.
func (s *Sink) Dir() string {
	return s.dir
}

// Save writes one artifact. The name is flattened to its base so a
// server-supplied name can never escape the output directory.
func (s *Sink) Save(_ context.Context, name string, data []byte) error {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid artifact name %q", name)
	}
	return os.WriteFile(filepath.Join(s.dir, name), data, 0644)
}
