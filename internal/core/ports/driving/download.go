package driving

import "context"

// DownloadService retrieves translated artifacts.
type DownloadService interface {
	// DownloadOne retrieves the artifact for a single translated item
	// and delivers it to the sink. Returns the artifact name. Fails
	// with domain.ErrInvalidState if the item is not translated;
	// no network call is made in that case.
	DownloadOne(ctx context.Context, id string) (string, error)

	// DownloadAll retrieves the bulk archive covering every translated
	// item and delivers it to the sink. Returns the archive name.
	// Fails with domain.ErrNoTranslated if nothing is translated;
	// no network call is made in that case.
	DownloadAll(ctx context.Context) (string, error)
}
