package ledger

import "errors"

// Service errors
var (
	// ErrUserBlacklisted rejects every simulation for a blacklisted user.
	ErrUserBlacklisted = errors.New("user is blacklisted from transfers")

	// ErrHookPaused rejects all simulations while the hook is paused.
	ErrHookPaused = errors.New("transfer hook is currently paused")

	// ErrUserNotFound is returned by read-only lookups for unknown users.
	ErrUserNotFound = errors.New("user not found")
)
