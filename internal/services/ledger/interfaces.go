package ledger

import "context"

// Service defines the ledger's public surface.
type Service interface {
	// SimulateTransfer runs a transfer through the hook rules and, on
	// success, advances the user's record.
	SimulateTransfer(ctx context.Context, userID string, amount uint64) (*TransferOutcome, error)

	// BlacklistUser permanently blocks a user. Idempotent; creates the
	// record if the user has never transferred.
	BlacklistUser(ctx context.Context, userID string) error

	// GetUserState returns a copy of the user's record without creating
	// one as a side effect.
	GetUserState(ctx context.Context, userID string) (*UserRecord, error)

	// SetPaused toggles the global pause gate.
	SetPaused(ctx context.Context, paused bool)

	// Stats returns the hook-wide counters.
	Stats(ctx context.Context) Stats
}

// Journal persists successful outcomes for audit history. Failures are
// logged, never surfaced to the caller.
type Journal interface {
	RecordOutcome(ctx context.Context, outcome *TransferOutcome) error
}

// CacheOperator is the read-view cache for user records.
type CacheOperator interface {
	GetUserRecord(ctx context.Context, userID string) (*UserRecord, error)
	SetUserRecord(ctx context.Context, record *UserRecord) error
	InvalidateUser(ctx context.Context, userID string) error
}

// MetricsCollector defines the interface for collecting ledger metrics.
type MetricsCollector interface {
	RecordTransfer(tier string, amount, fee uint64)
	RecordRejection(reason string)
	RecordCacheHit(op string)
	RecordCacheMiss(op string)
}
