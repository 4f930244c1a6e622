// Package filesystem adapts local paths to drop entries and picker
// selections for the intake service.
package filesystem

import (
	"context"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driving"
)

// readPage bounds how many children a single directory read returns.
// The intake walk drains pages until io.EOF, so the bound only shapes
// batching, never completeness.
const readPage = 64

// fallbackMIME is used when the extension has no registered type.
const fallbackMIME = "application/octet-stream"

// NewEntry builds a drop entry for a local path.
func NewEntry(path string) (domain.DropEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return &dirEntry{path: path, name: info.Name()}, nil
	}
	if !info.Mode().IsRegular() {
		// Sockets, devices and the like are ignored by intake.
		return otherEntry{name: info.Name()}, nil
	}
	return fileEntry{path: path, name: info.Name(), size: info.Size()}, nil
}

// Pick builds a picker selection for a regular file path.
func Pick(path string) (driving.PickedFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return driving.PickedFile{}, err
	}
	if info.IsDir() || !info.Mode().IsRegular() {
		return driving.PickedFile{}, domain.ErrInvalidInput
	}
	return driving.PickedFile{
		Name:      info.Name(),
		MIMEType:  mimeType(info.Name()),
		SizeBytes: info.Size(),
		Content:   pathBlob(path),
	}, nil
}

func mimeType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return fallbackMIME
}

// pathBlob opens the file at the path on demand.
type pathBlob string

// Open returns a fresh reader over the file.
func (b pathBlob) Open() (io.ReadCloser, error) {
	return os.Open(string(b))
}

// fileEntry is a regular file drop node.
type fileEntry struct {
	path string
	name string
	size int64
}

func (e fileEntry) Name() string         { return e.name }
func (e fileEntry) IsDir() bool          { return false }
func (e fileEntry) MIMEType() string     { return mimeType(e.name) }
func (e fileEntry) Size() int64          { return e.size }
func (e fileEntry) Content() domain.Blob { return pathBlob(e.path) }

// dirEntry is a directory drop node read in pages.
type dirEntry struct {
	path string
	name string
	f    *os.File
	done bool
}

func (e *dirEntry) Name() string { return e.name }
func (e *dirEntry) IsDir() bool  { return true }

// Read returns the next page of children, or io.EOF once the directory
// is exhausted. The underlying handle is opened lazily and closed at
// the end of the listing.
func (e *dirEntry) Read(ctx context.Context) ([]domain.DropEntry, error) {
	if e.done {
		return nil, io.EOF
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.f == nil {
		f, err := os.Open(e.path)
		if err != nil {
			e.done = true
			return nil, err
		}
		e.f = f
	}

	children, err := e.f.ReadDir(readPage)
	if err != nil {
		// io.EOF at the end of the listing, anything else is a fault;
		// either way this entry is finished.
		e.f.Close()
		e.done = true
		return nil, err
	}

	out := make([]domain.DropEntry, 0, len(children))
	for _, child := range children {
		childPath := filepath.Join(e.path, child.Name())
		switch {
		case child.IsDir():
			out = append(out, &dirEntry{path: childPath, name: child.Name()})
		case child.Type().IsRegular():
			size := int64(0)
			if info, err := child.Info(); err == nil {
				size = info.Size()
			}
			out = append(out, fileEntry{path: childPath, name: child.Name(), size: size})
		default:
			out = append(out, otherEntry{name: child.Name()})
		}
	}
	return out, nil
}

// otherEntry is a node that is neither file nor directory. Intake
// ignores it.
type otherEntry struct {
	name string
}

func (e otherEntry) Name() string { return e.name }
func (e otherEntry) IsDir() bool  { return false }
