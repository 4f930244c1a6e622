package driving

import "context"

// BatchCounts summarises the registry by status.
type BatchCounts struct {
	// Pending is the number of items awaiting submission.
	Pending int

	// Translating is the number of items in an in-flight batch.
	Translating int

	// Translated is the number of items with a successful verdict.
	Translated int

	// Errored is the number of items with a failure.
	Errored int
}

// Total returns the registry size.
func (c BatchCounts) Total() int {
	return c.Pending + c.Translating + c.Translated + c.Errored
}

// SubmissionCoordinator drives pending items through translation.
type SubmissionCoordinator interface {
	// Submit batches every pending item into one upload request and
	// applies the server's verdicts back onto the registry. An empty
	// registry is a no-op. Returns domain.ErrSubmitInProgress if a
	// batch is already in flight.
	Submit(ctx context.Context) error

	// InFlight reports whether a submission is currently in flight.
	InFlight() bool

	// ResetErrors returns errored items to pending so they can be
	// retried. Returns the number of items reset.
	ResetErrors(ctx context.Context) (int, error)

	// Counts returns the registry summarised by status.
	Counts(ctx context.Context) (BatchCounts, error)
}
