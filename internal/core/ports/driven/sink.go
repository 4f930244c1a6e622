package driven

import "context"

// ArtifactSink delivers retrieved artifacts to the user's environment,
// for example by saving them into an output directory.
type ArtifactSink interface {
	// Save persists one artifact under the given name.
	Save(ctx context.Context, name string, data []byte) error
}
