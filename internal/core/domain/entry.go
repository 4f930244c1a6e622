package domain

import "context"

// DropEntry is one node in a drop payload. Concrete entries implement
// FileEntry or DirEntry; anything else is ignored during intake.
type DropEntry interface {
	// Name is the base name of the node.
	Name() string

	// IsDir reports whether the node is a directory.
	IsDir() bool
}

// FileEntry is a file node in a drop payload.
type FileEntry interface {
	DropEntry

	// MIMEType is the declared content type.
	MIMEType() string

	// Size is the declared size in bytes.
	Size() int64

	// Content returns the handle to the file bytes.
	Content() Blob
}

// DirEntry is a directory node in a drop payload.
type DirEntry interface {
	DropEntry

	// Read returns the next batch of children. A single call may return
	// a partial listing; callers must call Read repeatedly until it
	// returns io.EOF to obtain the complete listing.
	Read(ctx context.Context) ([]DropEntry, error)
}
