package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyglot-labs/polyglot-cli/internal/adapters/driven/registry/memory"
	"github.com/polyglot-labs/polyglot-cli/internal/core/domain"
	"github.com/polyglot-labs/polyglot-cli/internal/core/ports/driven"
)

func seedRegistry(t *testing.T, reg *memory.FileRegistry, items ...domain.FileItem) {
	t.Helper()
	require.NoError(t, reg.Append(context.Background(), items))
}

func pendingItem(id, name string) domain.FileItem {
	return domain.FileItem{
		ID:      id,
		Name:    name,
		Content: domain.BytesBlob("content of " + name),
		Status:  domain.StatusPending,
	}
}

func TestSubmission_Submit_AppliesVerdicts(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg, pendingItem("1", "a.pdf"), pendingItem("2", "b.pdf"))

	api := &fakeAPI{verdicts: []domain.Verdict{
		{FileName: "a.pdf", Status: domain.StatusTranslated, TranslatedFile: "a_translated.xlsx"},
		{FileName: "b.pdf", Status: domain.StatusError, Error: "scan failed"},
	}}
	svc := NewSubmission(reg, api)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx))

	items, _ := reg.List(ctx)
	require.Len(t, items, 2)
	assert.Equal(t, domain.StatusTranslated, items[0].Status)
	assert.Equal(t, "a_translated.xlsx", items[0].ArtifactName)
	assert.Equal(t, 100, items[0].Progress)
	assert.Equal(t, domain.StatusError, items[1].Status)
	assert.Equal(t, "scan failed", items[1].ErrorDetail)

	assert.Equal(t, []string{"a.pdf", "b.pdf"}, api.sentNames)
	assert.False(t, svc.InFlight())
}

func TestSubmission_Submit_TransportFailureFailsWholeBatch(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg, pendingItem("1", "a.pdf"), pendingItem("2", "b.pdf"))

	api := &fakeAPI{submitErr: errors.New("connection refused")}
	svc := NewSubmission(reg, api)
	ctx := context.Background()

	err := svc.Submit(ctx)
	require.Error(t, err)

	items, _ := reg.List(ctx)
	for _, it := range items {
		assert.Equal(t, domain.StatusError, it.Status)
		assert.Contains(t, it.ErrorDetail, "connection refused")
	}
	assert.False(t, svc.InFlight(), "flag must clear on the failure path")
}

func TestSubmission_Submit_EmptyRegistryIsNoOp(t *testing.T) {
	api := &fakeAPI{}
	svc := NewSubmission(memory.NewFileRegistry(), api)

	require.NoError(t, svc.Submit(context.Background()))
	assert.Zero(t, api.submitCalls)
	assert.False(t, svc.InFlight())
}

func TestSubmission_Submit_ExcludesNonPending(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg,
		pendingItem("1", "new.pdf"),
		domain.FileItem{ID: "2", Name: "done.pdf", Status: domain.StatusTranslated, Content: domain.BytesBlob("x")},
		domain.FileItem{ID: "3", Name: "bad.pdf", Status: domain.StatusError, ErrorDetail: "old failure", Content: domain.BytesBlob("x")},
	)

	api := &fakeAPI{verdicts: []domain.Verdict{
		{FileName: "new.pdf", Status: domain.StatusTranslated},
	}}
	svc := NewSubmission(reg, api)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx))

	assert.Equal(t, []string{"new.pdf"}, api.sentNames, "only pending items go out")

	items, _ := reg.List(ctx)
	assert.Equal(t, domain.StatusTranslated, items[1].Status, "already translated item untouched")
	assert.Equal(t, "old failure", items[2].ErrorDetail, "errored item untouched")
}

func TestSubmission_Submit_NoPendingItemsMakesNoRequest(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg, domain.FileItem{ID: "1", Name: "done.pdf", Status: domain.StatusTranslated})

	api := &fakeAPI{}
	svc := NewSubmission(reg, api)

	require.NoError(t, svc.Submit(context.Background()))
	assert.Zero(t, api.submitCalls)
	assert.False(t, svc.InFlight())
}

func TestSubmission_Submit_ItemsAreTranslatingDuringRequest(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg, pendingItem("1", "a.pdf"))

	api := &fakeAPI{verdicts: []domain.Verdict{{FileName: "a.pdf", Status: domain.StatusTranslated}}}
	api.onSubmit = func(_ []driven.BatchFile) {
		items, err := reg.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.StatusTranslating, items[0].Status,
			"transition to translating happens before the request")
	}
	svc := NewSubmission(reg, api)

	require.NoError(t, svc.Submit(context.Background()))
}

func TestSubmission_Submit_SweepsOmittedVerdicts(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg, pendingItem("1", "a.pdf"), pendingItem("2", "empty.pdf"))

	// The server answers for a.pdf only; empty.pdf is silently omitted.
	api := &fakeAPI{verdicts: []domain.Verdict{{FileName: "a.pdf", Status: domain.StatusTranslated}}}
	svc := NewSubmission(reg, api)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx))

	items, _ := reg.List(ctx)
	assert.Equal(t, domain.StatusTranslated, items[0].Status)
	assert.Equal(t, domain.StatusError, items[1].Status, "omitted item must not stay translating")
	assert.Equal(t, "no verdict returned for file", items[1].ErrorDetail)
}

func TestSubmission_Submit_DuplicateNamesShareVerdict(t *testing.T) {
	reg := memory.NewFileRegistry()
	a := pendingItem("1", "report.pdf")
	b := pendingItem("2", "report.pdf")
	b.RelativePath = "archive"
	seedRegistry(t, reg, a, b)

	api := &fakeAPI{verdicts: []domain.Verdict{{FileName: "report.pdf", Status: domain.StatusTranslated}}}
	svc := NewSubmission(reg, api)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx))

	items, _ := reg.List(ctx)
	assert.Equal(t, domain.StatusTranslated, items[0].Status)
	assert.Equal(t, domain.StatusTranslated, items[1].Status)
}

func TestSubmission_Submit_RejectsOverlappingCall(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg, pendingItem("1", "a.pdf"))

	api := &fakeAPI{
		verdicts:      []domain.Verdict{{FileName: "a.pdf", Status: domain.StatusTranslated}},
		submitStarted: make(chan struct{}),
		submitRelease: make(chan struct{}),
	}
	svc := NewSubmission(reg, api)

	done := make(chan error, 1)
	go func() { done <- svc.Submit(context.Background()) }()

	select {
	case <-api.submitStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("first submission never started")
	}

	assert.True(t, svc.InFlight())
	err := svc.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrSubmitInProgress)

	close(api.submitRelease)
	require.NoError(t, <-done)
	assert.False(t, svc.InFlight())
}

func TestSubmission_RemovedItemDuringFlightIsSkipped(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg, pendingItem("1", "a.pdf"), pendingItem("2", "b.pdf"))

	api := &fakeAPI{verdicts: []domain.Verdict{
		{FileName: "a.pdf", Status: domain.StatusTranslated},
		{FileName: "b.pdf", Status: domain.StatusTranslated},
	}}
	// The user removes b.pdf while the request is in flight.
	api.onSubmit = func(_ []driven.BatchFile) {
		require.NoError(t, reg.Remove(context.Background(), "2"))
	}
	svc := NewSubmission(reg, api)
	ctx := context.Background()

	require.NoError(t, svc.Submit(ctx))

	items, _ := reg.List(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, domain.StatusTranslated, items[0].Status)
}

func TestSubmission_ResetErrors(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg,
		domain.FileItem{ID: "1", Name: "bad.pdf", Status: domain.StatusError, ErrorDetail: "boom", Progress: 100},
		domain.FileItem{ID: "2", Name: "ok.pdf", Status: domain.StatusTranslated, ArtifactName: "ok_translated.xlsx"},
	)
	svc := NewSubmission(reg, &fakeAPI{})
	ctx := context.Background()

	n, err := svc.ResetErrors(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	items, _ := reg.List(ctx)
	assert.Equal(t, domain.StatusPending, items[0].Status)
	assert.Empty(t, items[0].ErrorDetail)
	assert.Zero(t, items[0].Progress)
	assert.Equal(t, domain.StatusTranslated, items[1].Status, "translated items left alone")
}

func TestSubmission_Counts(t *testing.T) {
	reg := memory.NewFileRegistry()
	seedRegistry(t, reg,
		pendingItem("1", "a.pdf"),
		pendingItem("2", "b.pdf"),
		domain.FileItem{ID: "3", Name: "c.pdf", Status: domain.StatusTranslated},
		domain.FileItem{ID: "4", Name: "d.pdf", Status: domain.StatusError},
	)
	svc := NewSubmission(reg, &fakeAPI{})

	counts, err := svc.Counts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 1, counts.Translated)
	assert.Equal(t, 1, counts.Errored)
	assert.Equal(t, 4, counts.Total())
}
