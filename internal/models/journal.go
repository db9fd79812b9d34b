package models

import "time"

// TransferJournalEntry is the persisted audit record of one successful
// simulated transfer. All monetary fields are smallest-unit integers.
type TransferJournalEntry struct {
	ID              uint   `gorm:"primarykey" json:"-"`
	Reference       string `gorm:"uniqueIndex;not null" json:"reference"`
	UserID          string `gorm:"index;not null" json:"user_id"`
	Amount          uint64 `gorm:"not null" json:"amount"`
	FeeTierBps      uint64 `gorm:"not null" json:"fee_tier_bps"`
	BaseFee         uint64 `gorm:"not null" json:"base_fee"`
	LoyaltyTier     string `gorm:"not null" json:"loyalty_tier"`
	DiscountBps     uint64 `json:"discount_bps"`
	Discount        uint64 `json:"discount"`
	FinalFee        uint64 `gorm:"not null" json:"final_fee"`
	NetAmount       uint64 `gorm:"not null" json:"net_amount"`
	EffectiveFeeBps uint64 `json:"effective_fee_bps"`
	TransferCount   uint64 `gorm:"not null" json:"user_transfer_count"`
	TotalVolume     uint64 `gorm:"not null" json:"user_total_volume"`

	CreatedAt time.Time `json:"created_at"`
}
