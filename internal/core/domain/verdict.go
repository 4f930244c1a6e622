package domain

// Verdict is a server-reported per-file outcome from the upload
// endpoint. Verdicts are keyed by file name on the wire; the server
// contract has no notion of client-side item IDs.
type Verdict struct {
	// FileName is the original file name the verdict applies to.
	FileName string `json:"fileName"`

	// Status is the reported outcome, either StatusTranslated or
	// StatusError.
	Status FileStatus `json:"status"`

	// Error is the failure message when Status is StatusError.
	Error string `json:"error,omitempty"`

	// TranslatedFile is the server-side artifact name, present on
	// successful verdicts.
	TranslatedFile string `json:"translatedFile,omitempty"`
}
