package domain

import (
	"bytes"
	"io"
)

// Blob is an opaque handle to file content. Implementations open the
// underlying bytes on demand so registry entries never hold duplicated
// content in memory.
type Blob interface {
	// Open returns a fresh reader over the content. The caller closes it.
	Open() (io.ReadCloser, error)
}

// BytesBlob adapts an in-memory byte slice to a Blob.
type BytesBlob []byte

// Open returns a reader over the slice.
func (b BytesBlob) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}
