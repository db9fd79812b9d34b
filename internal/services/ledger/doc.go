/*
Package ledger tracks per-user transfer history and simulates transfers
through the hook's fee and loyalty rules.

The ledger owns the user records. A simulated transfer resolves the
user's record, rejects blacklisted users, prices the transfer through
the fee schedule, applies the loyalty discount earned by the user's
prior transfer count, and only then advances the record.

Usage:

	svc := ledger.NewService(journal, cache, metrics)

	outcome, err := svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
	if errors.Is(err, ledger.ErrUserBlacklisted) {
	    // blocked, record untouched
	}

	err = svc.BlacklistUser(ctx, "bob")

	record, err := svc.GetUserState(ctx, "alice")

All dependencies are optional; passing nil yields in-memory-only
operation, which is what cmd/demo and the tests use.
*/
package ledger
