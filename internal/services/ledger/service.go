package ledger

import (
	"context"
	"log"
	"sync"

	"versahook/internal/services/feeschedule"
)

// userEntry pairs a record with the mutex serializing its
// read-modify-write. Entries are created lazily and never removed.
type userEntry struct {
	mu  sync.Mutex
	rec UserRecord
}

type service struct {
	evaluator *feeschedule.Evaluator

	mu    sync.RWMutex
	users map[string]*userEntry

	statsMu sync.RWMutex
	stats   Stats

	journal Journal
	cache   CacheOperator
	metrics MetricsCollector
}

// NewService creates a new ledger service. Journal, cache and metrics
// are optional; nil values fall back to no-op implementations.
func NewService(journal Journal, cache CacheOperator, metrics MetricsCollector) Service {
	if journal == nil {
		journal = noopJournal{}
	}
	if cache == nil {
		cache = noopCache{}
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		evaluator: feeschedule.NewEvaluator(),
		users:     make(map[string]*userEntry),
		journal:   journal,
		cache:     cache,
		metrics:   metrics,
	}
}

// getOrCreate resolves the user's entry, creating a zeroed record on
// first reference. Callers lock the returned entry before touching the
// record.
func (s *service) getOrCreate(userID string) *userEntry {
	s.mu.RLock()
	entry, ok := s.users[userID]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok = s.users[userID]; ok {
		return entry
	}
	entry = &userEntry{rec: UserRecord{UserID: userID}}
	s.users[userID] = entry
	return entry
}

func (s *service) SimulateTransfer(ctx context.Context, userID string, amount uint64) (*TransferOutcome, error) {
	if s.isPaused() {
		s.metrics.RecordRejection("paused")
		return nil, ErrHookPaused
	}

	entry := s.getOrCreate(userID)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.rec.Blacklisted {
		s.metrics.RecordRejection("blacklisted")
		return nil, ErrUserBlacklisted
	}

	feeBps, baseFee := s.evaluator.BaseFee(amount)

	// Loyalty is earned by history: the tier comes from the count
	// before this transfer is added.
	tier := TierForCount(entry.rec.TransferCount)
	discountBps := tier.DiscountBps()
	discount := feeschedule.ApplyBps(baseFee, discountBps)
	finalFee := baseFee - discount
	netAmount := amount - finalFee

	// amount 0 is valid; the zero rate is policy, not arithmetic.
	var effectiveBps uint64
	if amount > 0 {
		effectiveBps = feeschedule.RateBps(finalFee, amount)
	}

	entry.rec.TransferCount++
	entry.rec.TotalVolume += amount

	outcome := &TransferOutcome{
		Success:         true,
		UserID:          userID,
		Amount:          amount,
		FeeTierBps:      feeBps,
		BaseFee:         baseFee,
		LoyaltyTier:     tier,
		DiscountBps:     discountBps,
		Discount:        discount,
		FinalFee:        finalFee,
		NetAmount:       netAmount,
		EffectiveFeeBps: effectiveBps,
		TransferCount:   entry.rec.TransferCount,
		TotalVolume:     entry.rec.TotalVolume,
	}

	s.statsMu.Lock()
	s.stats.TotalTransfers++
	s.stats.TotalVolume += amount
	s.stats.TotalFeesCollected += finalFee
	s.statsMu.Unlock()

	if err := s.journal.RecordOutcome(ctx, outcome); err != nil {
		log.Printf("failed to journal transfer for %s: %v", userID, err)
	}
	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		log.Printf("failed to invalidate cache for %s: %v", userID, err)
	}

	s.metrics.RecordTransfer(tier.String(), amount, finalFee)

	return outcome, nil
}

func (s *service) BlacklistUser(ctx context.Context, userID string) error {
	entry := s.getOrCreate(userID)
	entry.mu.Lock()
	entry.rec.Blacklisted = true
	entry.mu.Unlock()

	if err := s.cache.InvalidateUser(ctx, userID); err != nil {
		log.Printf("failed to invalidate cache for %s: %v", userID, err)
	}
	return nil
}

func (s *service) GetUserState(ctx context.Context, userID string) (*UserRecord, error) {
	// Try cache first
	if rec, err := s.cache.GetUserRecord(ctx, userID); err == nil && rec != nil {
		s.metrics.RecordCacheHit("user_state")
		return rec, nil
	}
	s.metrics.RecordCacheMiss("user_state")

	s.mu.RLock()
	entry, ok := s.users[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}

	entry.mu.Lock()
	rec := entry.rec
	entry.mu.Unlock()

	if err := s.cache.SetUserRecord(ctx, &rec); err != nil {
		log.Printf("failed to cache record for %s: %v", userID, err)
	}
	return &rec, nil
}

func (s *service) SetPaused(_ context.Context, paused bool) {
	s.statsMu.Lock()
	s.stats.Paused = paused
	s.statsMu.Unlock()
}

func (s *service) Stats(_ context.Context) Stats {
	s.statsMu.RLock()
	defer s.statsMu.RUnlock()
	return s.stats
}

func (s *service) isPaused() bool {
	s.statsMu.RLock()
	defer s.statsMu.RUnlock()
	return s.stats.Paused
}

type noopJournal struct{}

func (noopJournal) RecordOutcome(context.Context, *TransferOutcome) error { return nil }

type noopCache struct{}

func (noopCache) GetUserRecord(context.Context, string) (*UserRecord, error) { return nil, nil }
func (noopCache) SetUserRecord(context.Context, *UserRecord) error           { return nil }
func (noopCache) InvalidateUser(context.Context, string) error               { return nil }
