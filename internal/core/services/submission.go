package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driving"
	"github.com/polyglot-labs/polyglot-cli/internal/logger"
)

// Ensure Submission implements the interface.
var _ driving.SubmissionCoordinator = (*Submission)(nil)

// Submission batches pending items into one upload request and applies
// the server's per-file verdicts back onto the registry.
type Submission struct {
	registry driven.FileRegistry
	api      driven.TranslationAPI

	mu       sync.Mutex
	inFlight bool
}

// NewSubmission creates a new submission coordinator.
func NewSubmission(registry driven.FileRegistry, api driven.TranslationAPI) *Submission {
	return &Submission{registry: registry, api: api}
}

// InFlight reports whether a submission is currently in flight.
func (s *Submission) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// begin raises the in-flight flag, rejecting overlapping submissions.
func (s *Submission) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return domain.ErrSubmitInProgress
	}
	s.inFlight = true
	return nil
}

// end lowers the in-flight flag. Runs on every Submit exit path.
func (s *Submission) end() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
}

// Submit selects every pending item, optimistically marks the batch
// translating, uploads it, and applies the verdicts. On a transport or
// server failure every in-flight item becomes errored. Items the server
// omitted from an otherwise successful response are swept to errored as
// well, so nothing is left stuck at translating.
func (s *Submission) Submit(ctx context.Context) error {
	items, err := s.registry.List(ctx)
	if err != nil {
		return fmt.Errorf("list registry: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	batch := make([]driven.BatchFile, 0, len(items))
	batchIDs := make(map[string]struct{})
	for _, it := range items {
		if it.Status != domain.StatusPending {
			continue
		}
		batch = append(batch, driven.BatchFile{ID: it.ID, Name: it.Name, Content: it.Content})
		batchIDs[it.ID] = struct{}{}
	}
	if len(batch) == 0 {
		return nil
	}

	inBatch := func(it domain.FileItem) bool {
		_, ok := batchIDs[it.ID]
		return ok
	}
	inFlightNow := func(it domain.FileItem) bool {
		return inBatch(it) && it.Status == domain.StatusTranslating
	}

	// Optimistic transition before the request goes out.
	if _, err := s.registry.UpdateWhere(ctx, inBatch, func(it *domain.FileItem) {
		it.Status = domain.StatusTranslating
	}); err != nil {
		return fmt.Errorf("mark translating: %w", err)
	}

	logger.Info("Submitting batch of %d files", len(batch))
	verdicts, err := s.api.SubmitBatch(ctx, batch)
	if err != nil {
		// No partial information is assumed: the whole batch fails.
		detail := err.Error()
		_, _ = s.registry.UpdateWhere(ctx, inFlightNow, func(it *domain.FileItem) {
			it.Status = domain.StatusError
			it.ErrorDetail = detail
			it.Progress = 100
		})
		return fmt.Errorf("submit batch: %w", err)
	}

	// Verdicts are keyed by name on the wire. Every in-flight item
	// bearing a verdict's name receives the same outcome, which is the
	// closest safe reading when names collide across paths.
	byName := make(map[string]domain.Verdict, len(verdicts))
	for _, v := range verdicts {
		byName[v.FileName] = v
	}
	if _, err := s.registry.UpdateWhere(ctx, inFlightNow, func(it *domain.FileItem) {
		v, ok := byName[it.Name]
		if !ok {
			return
		}
		it.Status = v.Status
		it.ErrorDetail = v.Error
		it.ArtifactName = v.TranslatedFile
		if v.Status.Terminal() {
			it.Progress = 100
		}
	}); err != nil {
		return fmt.Errorf("apply verdicts: %w", err)
	}

	// The server silently omits files it could not process at all.
	// Sweep the leftovers so no item is stuck at translating forever.
	swept, err := s.registry.UpdateWhere(ctx, inFlightNow, func(it *domain.FileItem) {
		it.Status = domain.StatusError
		it.ErrorDetail = "no verdict returned for file"
		it.Progress = 100
	})
	if err != nil {
		return fmt.Errorf("sweep unmatched: %w", err)
	}
	if swept > 0 {
		logger.Warn("%d files received no verdict and were marked errored", swept)
	}
	return nil
}

// ResetErrors returns errored items to pending so they can be retried.
func (s *Submission) ResetErrors(ctx context.Context) (int, error) {
	return s.registry.UpdateWhere(ctx,
		func(it domain.FileItem) bool { return it.Status == domain.StatusError },
		func(it *domain.FileItem) {
			it.Status = domain.StatusPending
			it.ErrorDetail = ""
			it.ArtifactName = ""
			it.Progress = 0
		})
}

// Counts returns the registry summarised by status.
func (s *Submission) Counts(ctx context.Context) (driving.BatchCounts, error) {
	items, err := s.registry.List(ctx)
	if err != nil {
		return driving.BatchCounts{}, err
	}

	var c driving.BatchCounts
	for _, it := range items {
		switch it.Status {
		case domain.StatusPending:
			c.Pending++
		case domain.StatusTranslating:
			c.Translating++
		case domain.StatusTranslated:
			c.Translated++
		case domain.StatusError:
			c.Errored++
		}
	}
	return c, nil
}
