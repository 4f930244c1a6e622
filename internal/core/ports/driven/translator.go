package driven

import (
	"context"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
)

// BatchFile is one file in an outbound translation batch.
type BatchFile struct {
	// ID is the registry item ID. It never crosses the wire; the
	// server contract correlates by file name only.
	ID string

	// Name is the original file name sent as the multipart filename.
	Name string

	// Content is the handle to the raw bytes.
	Content domain.Blob
}

// TranslationAPI is the remote translation backend.
type TranslationAPI interface {
	// SubmitBatch uploads the batch as one multipart request and
	// returns the server's per-file verdicts. A transport fault or
	// non-success status returns an error and no verdicts.
	SubmitBatch(ctx context.Context, files []BatchFile) ([]domain.Verdict, error)

	// FetchArtifact retrieves a single translated artifact by name.
	FetchArtifact(ctx context.Context, name string) ([]byte, error)

	// FetchArchive retrieves the bulk archive of all artifacts.
	FetchArchive(ctx context.Context) ([]byte, error)

	// ArtifactName derives the server-side artifact name for an
	// original file name.
	ArtifactName(original string) string
}
