package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockJournal struct {
	mock.Mock
}

func (m *MockJournal) RecordOutcome(ctx context.Context, outcome *TransferOutcome) error {
	args := m.Called(ctx, outcome)
	return args.Error(0)
}

func TestTierForCount_Boundaries(t *testing.T) {
	tests := []struct {
		count   uint64
		want    LoyaltyTier
		wantBps uint64
	}{
		{0, TierNone, 0},
		{9, TierNone, 0},
		{10, TierBronze, 10},
		{49, TierBronze, 10},
		{50, TierSilver, 25},
		{99, TierSilver, 25},
		{100, TierGold, 50},
		{1000, TierGold, 50},
	}

	for _, tt := range tests {
		tier := TierForCount(tt.count)
		assert.Equal(t, tt.want, tier, "count %d", tt.count)
		assert.Equal(t, tt.wantBps, tier.DiscountBps(), "count %d", tt.count)
	}
}

func TestSimulateTransfer_StateAdvancement(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	// Nine transfers keep the user on the no-discount tier; the tier is
	// evaluated on the count before the transfer is added.
	for i := 1; i <= 9; i++ {
		outcome, err := svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
		require.NoError(t, err)
		assert.Equal(t, TierNone, outcome.LoyaltyTier, "transfer #%d", i)
		assert.Equal(t, uint64(i), outcome.TransferCount)
		assert.Equal(t, uint64(i)*1_000_000_000, outcome.TotalVolume)
	}

	// The 10th call still sees count 9 (None) but moves the record to 10.
	outcome, err := svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, TierNone, outcome.LoyaltyTier)
	assert.Equal(t, uint64(10), outcome.TransferCount)

	// The 11th call sees count 10 and earns Bronze.
	outcome, err = svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, TierBronze, outcome.LoyaltyTier)
	assert.Equal(t, uint64(10), outcome.DiscountBps)
}

func TestSimulateTransfer_EndToEndScenario(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		_, err := svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
		require.NoError(t, err)
	}

	outcome, err := svc.SimulateTransfer(ctx, "alice", 5_000_000_000)
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.Equal(t, uint64(25), outcome.FeeTierBps)
	assert.Equal(t, uint64(12_500_000), outcome.BaseFee)
	assert.Equal(t, TierNone, outcome.LoyaltyTier)
	assert.Equal(t, uint64(0), outcome.Discount)
	assert.Equal(t, uint64(12_500_000), outcome.FinalFee)
	assert.Equal(t, uint64(4_987_500_000), outcome.NetAmount)
	assert.Equal(t, uint64(10), outcome.TransferCount)
	assert.Equal(t, uint64(14_000_000_000), outcome.TotalVolume)
}

func TestSimulateTransfer_IntegerExactness(t *testing.T) {
	svc := NewService(nil, nil, nil)

	outcome, err := svc.SimulateTransfer(context.Background(), "u", 1_000_000_000)
	require.NoError(t, err)

	assert.Equal(t, uint64(2_500_000), outcome.BaseFee)
	assert.Equal(t, uint64(2_500_000), outcome.FinalFee)
	assert.Equal(t, uint64(997_500_000), outcome.NetAmount)
	assert.Equal(t, uint64(25), outcome.EffectiveFeeBps)
}

func TestSimulateTransfer_ZeroAmount(t *testing.T) {
	svc := NewService(nil, nil, nil)

	outcome, err := svc.SimulateTransfer(context.Background(), "u", 0)
	require.NoError(t, err)

	assert.True(t, outcome.Success)
	assert.Equal(t, uint64(0), outcome.BaseFee)
	assert.Equal(t, uint64(0), outcome.FinalFee)
	assert.Equal(t, uint64(0), outcome.NetAmount)
	assert.Equal(t, uint64(0), outcome.EffectiveFeeBps)
	assert.Equal(t, uint64(1), outcome.TransferCount)
	assert.Equal(t, uint64(0), outcome.TotalVolume)
}

func TestBlacklist_Invariant(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.SimulateTransfer(ctx, "bob", 1_000_000_000)
	require.NoError(t, err)

	require.NoError(t, svc.BlacklistUser(ctx, "bob"))

	for _, amount := range []uint64{0, 1, 1_000_000_000, 1 << 62} {
		_, err := svc.SimulateTransfer(ctx, "bob", amount)
		assert.ErrorIs(t, err, ErrUserBlacklisted, "amount %d", amount)
	}

	// The record shows no drift from the rejected attempts.
	rec, err := svc.GetUserState(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, rec.Blacklisted)
	assert.Equal(t, uint64(1), rec.TransferCount)
	assert.Equal(t, uint64(1_000_000_000), rec.TotalVolume)

	// Blacklisting again is a no-op.
	require.NoError(t, svc.BlacklistUser(ctx, "bob"))
	rec, err = svc.GetUserState(ctx, "bob")
	require.NoError(t, err)
	assert.True(t, rec.Blacklisted)
	assert.Equal(t, uint64(1), rec.TransferCount)
}

func TestBlacklist_CreatesRecord(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.BlacklistUser(ctx, "mallory"))

	rec, err := svc.GetUserState(ctx, "mallory")
	require.NoError(t, err)
	assert.True(t, rec.Blacklisted)
	assert.Equal(t, uint64(0), rec.TransferCount)
	assert.Equal(t, uint64(0), rec.TotalVolume)

	_, err = svc.SimulateTransfer(ctx, "mallory", 100)
	assert.ErrorIs(t, err, ErrUserBlacklisted)
}

func TestGetUserState_DoesNotCreate(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.GetUserState(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Still unknown afterwards.
	_, err = svc.GetUserState(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserState_ReturnsCopy(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.SimulateTransfer(ctx, "alice", 100)
	require.NoError(t, err)

	rec, err := svc.GetUserState(ctx, "alice")
	require.NoError(t, err)
	rec.TransferCount = 999

	fresh, err := svc.GetUserState(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), fresh.TransferCount)
}

func TestPauseGate(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	svc.SetPaused(ctx, true)

	_, err := svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
	assert.ErrorIs(t, err, ErrHookPaused)

	// The rejected attempt must not have created or advanced a record.
	_, err = svc.GetUserState(ctx, "alice")
	assert.ErrorIs(t, err, ErrUserNotFound)

	svc.SetPaused(ctx, false)
	outcome, err := svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), outcome.TransferCount)
}

func TestStats_Accumulation(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	_, err := svc.SimulateTransfer(ctx, "a", 1_000_000_000) // fee 2_500_000
	require.NoError(t, err)
	_, err = svc.SimulateTransfer(ctx, "b", 50_000_000) // 100bps, fee 500_000
	require.NoError(t, err)

	stats := svc.Stats(ctx)
	assert.Equal(t, uint64(2), stats.TotalTransfers)
	assert.Equal(t, uint64(1_050_000_000), stats.TotalVolume)
	assert.Equal(t, uint64(3_000_000), stats.TotalFeesCollected)
	assert.False(t, stats.Paused)
}

func TestSimulateTransfer_JournalsOutcome(t *testing.T) {
	journal := new(MockJournal)
	journal.On("RecordOutcome", mock.Anything, mock.MatchedBy(func(o *TransferOutcome) bool {
		return o.UserID == "alice" && o.FinalFee == 2_500_000
	})).Return(nil)

	svc := NewService(journal, nil, nil)
	_, err := svc.SimulateTransfer(context.Background(), "alice", 1_000_000_000)
	require.NoError(t, err)

	journal.AssertExpectations(t)
}

func TestSimulateTransfer_JournalFailureIsNotFatal(t *testing.T) {
	journal := new(MockJournal)
	journal.On("RecordOutcome", mock.Anything, mock.Anything).Return(errors.New("db down"))

	svc := NewService(journal, nil, nil)
	outcome, err := svc.SimulateTransfer(context.Background(), "alice", 1_000_000_000)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
}

func TestSimulateTransfer_ConcurrentSameUser(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.SimulateTransfer(ctx, "alice", 1_000)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rec, err := svc.GetUserState(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(n), rec.TransferCount)
	assert.Equal(t, uint64(n*1_000), rec.TotalVolume)
}
