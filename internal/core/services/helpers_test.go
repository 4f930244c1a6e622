package services

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
)

// fakeAPI is a scriptable driven.TranslationAPI for service tests.
type fakeAPI struct {
	verdicts  []domain.Verdict
	submitErr error

	artifact    []byte
	artifactErr error
	archive     []byte
	archiveErr  error

	submitCalls   int
	sentNames     []string
	fetchedNames  []string
	archiveCalls  int
	onSubmit      func(files []driven.BatchFile)
	submitStarted chan struct{}
	submitRelease chan struct{}
}

func (f *fakeAPI) SubmitBatch(_ context.Context, files []driven.BatchFile) ([]domain.Verdict, error) {
	f.submitCalls++
	for _, bf := range files {
		f.sentNames = append(f.sentNames, bf.Name)
	}
	if f.onSubmit != nil {
		f.onSubmit(files)
	}
	if f.submitStarted != nil {
		close(f.submitStarted)
	}
	if f.submitRelease != nil {
		<-f.submitRelease
	}
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.verdicts, nil
}

func (f *fakeAPI) FetchArtifact(_ context.Context, name string) ([]byte, error) {
	f.fetchedNames = append(f.fetchedNames, name)
	if f.artifactErr != nil {
		return nil, f.artifactErr
	}
	return f.artifact, nil
}

func (f *fakeAPI) FetchArchive(_ context.Context) ([]byte, error) {
	f.archiveCalls++
	if f.archiveErr != nil {
		return nil, f.archiveErr
	}
	return f.archive, nil
}

func (f *fakeAPI) ArtifactName(original string) string {
	return strings.TrimSuffix(original, path.Ext(original)) + "_translated.xlsx"
}

// fakeSink records saved artifacts in memory.
type fakeSink struct {
	saved map[string][]byte
	err   error
}

func newFakeSink() *fakeSink {
	return &fakeSink{saved: make(map[string][]byte)}
}

func (s *fakeSink) Save(_ context.Context, name string, data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.saved[name] = data
	return nil
}

// fileNode is an in-memory drop file entry.
type fileNode struct {
	name string
	mime string
	data []byte
}

func (n fileNode) Name() string         { return n.name }
func (n fileNode) IsDir() bool          { return false }
func (n fileNode) MIMEType() string     { return n.mime }
func (n fileNode) Size() int64          { return int64(len(n.data)) }
func (n fileNode) Content() domain.Blob { return domain.BytesBlob(n.data) }

// dirNode is an in-memory drop directory entry that yields its children
// across several Read calls to exercise the paged-listing contract.
type dirNode struct {
	name  string
	pages [][]domain.DropEntry
	calls int
	err   error
}

func (n *dirNode) Name() string { return n.name }
func (n *dirNode) IsDir() bool  { return true }

func (n *dirNode) Read(_ context.Context) ([]domain.DropEntry, error) {
	if n.err != nil {
		return nil, n.err
	}
	if n.calls >= len(n.pages) {
		return nil, io.EOF
	}
	page := n.pages[n.calls]
	n.calls++
	return page, nil
}

// oddNode is a drop entry that is neither file nor directory.
type oddNode struct{ name string }

func (n oddNode) Name() string { return n.name }
func (n oddNode) IsDir() bool  { return false }
