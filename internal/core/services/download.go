package services

import (
	"context"
	"fmt"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driving"
	"github.com/polyglot-labs/polyglot-cli/internal/logger"
)

// ArchiveName is the delivered name of the bulk archive.
const ArchiveName = "translated_documents.zip"

// Ensure Download implements the interface.
var _ driving.DownloadService = (*Download)(nil)

// Download retrieves translated artifacts and delivers them to the
// configured sink.
type Download struct {
	registry driven.FileRegistry
	api      driven.TranslationAPI
	sink     driven.ArtifactSink
}

// NewDownload creates a new download service.
func NewDownload(registry driven.FileRegistry, api driven.TranslationAPI, sink driven.ArtifactSink) *Download {
	return &Download{registry: registry, api: api, sink: sink}
}

// DownloadOne retrieves the artifact for a single translated item.
// The server-reported artifact name is preferred; otherwise the name is
// derived from the original file name.
func (s *Download) DownloadOne(ctx context.Context, id string) (string, error) {
	item, err := s.registry.Get(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get item: %w", err)
	}
	if item.Status != domain.StatusTranslated {
		return "", fmt.Errorf("%s is %s: %w", item.Name, item.Status, domain.ErrInvalidState)
	}

	name := item.ArtifactName
	if name == "" {
		name = s.api.ArtifactName(item.Name)
	}

	data, err := s.api.FetchArtifact(ctx, name)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", name, err)
	}
	if err := s.sink.Save(ctx, name, data); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	logger.Info("Saved artifact %s (%s)", name, domain.FormatSize(int64(len(data))))
	return name, nil
}

// DownloadAll retrieves the bulk archive. At least one item must be
// translated; otherwise no network call is made.
func (s *Download) DownloadAll(ctx context.Context) (string, error) {
	items, err := s.registry.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list registry: %w", err)
	}

	translated := 0
	for _, it := range items {
		if it.Status == domain.StatusTranslated {
			translated++
		}
	}
	if translated == 0 {
		return "", domain.ErrNoTranslated
	}

	data, err := s.api.FetchArchive(ctx)
	if err != nil {
		return "", fmt.Errorf("download archive: %w", err)
	}
	if err := s.sink.Save(ctx, ArchiveName, data); err != nil {
		return "", fmt.Errorf("save archive: %w", err)
	}
	logger.Info("Saved archive %s covering %d files", ArchiveName, translated)
	return ArchiveName, nil
}
