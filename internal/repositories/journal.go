package repositories

import (
	"context"
	"errors"
	"fmt"

	"versahook/internal/models"
	"versahook/internal/services/ledger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrEntryNotFound is returned when a journal entry does not exist.
var ErrEntryNotFound = errors.New("journal entry not found")

// JournalRepository persists and queries the transfer audit history.
// It implements ledger.Journal.
type JournalRepository interface {
	RecordOutcome(ctx context.Context, outcome *ledger.TransferOutcome) error
	GetByReference(ctx context.Context, reference string) (*models.TransferJournalEntry, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.TransferJournalEntry, error)
}

type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository creates a Postgres-backed journal.
func NewJournalRepository(db *gorm.DB) JournalRepository {
	if db == nil {
		panic("db is required")
	}
	return &journalRepository{db: db}
}

func (r *journalRepository) RecordOutcome(ctx context.Context, outcome *ledger.TransferOutcome) error {
	entry := &models.TransferJournalEntry{
		Reference:       uuid.NewString(),
		UserID:          outcome.UserID,
		Amount:          outcome.Amount,
		FeeTierBps:      outcome.FeeTierBps,
		BaseFee:         outcome.BaseFee,
		LoyaltyTier:     outcome.LoyaltyTier.String(),
		DiscountBps:     outcome.DiscountBps,
		Discount:        outcome.Discount,
		FinalFee:        outcome.FinalFee,
		NetAmount:       outcome.NetAmount,
		EffectiveFeeBps: outcome.EffectiveFeeBps,
		TransferCount:   outcome.TransferCount,
		TotalVolume:     outcome.TotalVolume,
	}

	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to record journal entry: %w", err)
	}
	return nil
}

func (r *journalRepository) GetByReference(ctx context.Context, reference string) (*models.TransferJournalEntry, error) {
	var entry models.TransferJournalEntry
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return &entry, nil
}

func (r *journalRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]models.TransferJournalEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var entries []models.TransferJournalEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	return entries, nil
}
