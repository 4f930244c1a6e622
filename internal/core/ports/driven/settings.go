package driven

// Settings are the persisted client connection settings. Registry
// state is never persisted; only how to reach the server and where to
// place downloaded artifacts.
type Settings struct {
	// ServerURL is the translation backend base URL.
	ServerURL string

	// OutputDir is where downloaded artifacts are written.
	OutputDir string

	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int

	// TargetExt is the artifact extension the server produces.
	TargetExt string
}

// SettingsStore loads and persists client settings.
type SettingsStore interface {
	// Get returns the current settings.
	Get() Settings

	// Set replaces and persists the settings.
	Set(s Settings) error
}
