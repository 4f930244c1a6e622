package domain

import (
	"fmt"
	"math"
	"strconv"
)

// FileStatus is the lifecycle state of a registered file.
type FileStatus string

// File lifecycle states. Items enter the registry as StatusPending and
// move through StatusTranslating to one of the terminal states.
const (
	// StatusPending means the file is registered but not yet submitted.
	StatusPending FileStatus = "pending"

	// StatusTranslating means the file is part of an in-flight batch.
	StatusTranslating FileStatus = "translating"

	// StatusTranslated means the server produced an artifact for the file.
	StatusTranslated FileStatus = "translated"

	// StatusError means submission failed for this file.
	StatusError FileStatus = "error"
)

// Terminal reports whether the status ends a submission attempt.
func (s FileStatus) Terminal() bool {
	return s == StatusTranslated || s == StatusError
}

// CanTransition reports whether moving from s to next is a valid
// lifecycle step. The only allowed paths are pending to translating,
// translating to a terminal state, and error back to pending for a
// retry.
func (s FileStatus) CanTransition(next FileStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusTranslating
	case StatusTranslating:
		return next.Terminal()
	case StatusError:
		return next == StatusPending
	default:
		return false
	}
}

// FileItem is one user-submitted document and its lifecycle status.
type FileItem struct {
	// ID is the unique identifier, assigned at intake and stable for
	// the record's lifetime. It is the sole key for lookup and removal.
	ID string

	// Name is the original file name. Not guaranteed unique.
	Name string

	// MIMEType is the declared content type, used only for display.
	MIMEType string

	// SizeBytes is the declared file size.
	SizeBytes int64

	// RelativePath is the slash-separated directory chain the file was
	// discovered under. Empty for files selected directly; used for
	// grouping only, never for identity.
	RelativePath string

	// Content is the handle to the underlying bytes. The registry entry
	// owns the handle; content is read on demand, never copied.
	Content Blob

	// Status is the current lifecycle state.
	Status FileStatus

	// Progress is 0-100 and only meaningful while translating. The
	// server does not stream progress, so in practice it jumps from 0
	// to 100 on a terminal verdict.
	Progress int

	// ErrorDetail is the human-readable failure message, set only when
	// Status is StatusError.
	ErrorDetail string

	// ArtifactName is the server-reported translated file name, set
	// when a verdict carries one. Empty until then.
	ArtifactName string
}

// DisplayPath returns the path shown to the user: the relative path
// joined with the name, or just the name for directly selected files.
func (f *FileItem) DisplayPath() string {
	if f.RelativePath == "" {
		return f.Name
	}
	return f.RelativePath + "/" + f.Name
}

// FormatSize renders a byte count in human-readable units.
func FormatSize(bytes int64) string {
	if bytes == 0 {
		return "0 B"
	}
	const unit = 1024.0
	units := []string{"B", "KB", "MB", "GB", "TB"}
	v := float64(bytes)
	i := 0
	for v >= unit && i < len(units)-1 {
		v /= unit
		i++
	}
	rounded := math.Round(v*100) / 100
	return fmt.Sprintf("%s %s", strconv.FormatFloat(rounded, 'f', -1, 64), units[i])
}
