package ledger

import "fmt"

// LoyaltyTier is the discount bracket a user has earned through
// historical transfer count.
type LoyaltyTier int

const (
	TierNone LoyaltyTier = iota
	TierBronze
	TierSilver
	TierGold
)

func (t LoyaltyTier) String() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierSilver:
		return "Silver"
	case TierGold:
		return "Gold"
	default:
		return "None"
	}
}

// DiscountBps returns the fee discount the tier grants, in basis points.
func (t LoyaltyTier) DiscountBps() uint64 {
	switch t {
	case TierBronze:
		return BronzeDiscountBps
	case TierSilver:
		return SilverDiscountBps
	case TierGold:
		return GoldDiscountBps
	default:
		return 0
	}
}

// MarshalJSON renders the tier as its name so API payloads stay readable.
func (t LoyaltyTier) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", t.String())), nil
}

// UserRecord is the per-user state tracked by the ledger. The ledger
// hands out copies only; mutating a returned record has no effect.
type UserRecord struct {
	UserID        string `json:"user_id"`
	TransferCount uint64 `json:"transfer_count"`
	TotalVolume   uint64 `json:"total_volume"`
	Blacklisted   bool   `json:"is_blacklisted"`
}

// TransferOutcome is the immutable result of a successful simulation.
// Every field is an integer so callers can re-derive percentages and
// token amounts without losing precision.
type TransferOutcome struct {
	Success         bool        `json:"success"`
	UserID          string      `json:"user"`
	Amount          uint64      `json:"amount"`
	FeeTierBps      uint64      `json:"fee_tier_bps"`
	BaseFee         uint64      `json:"base_fee"`
	LoyaltyTier     LoyaltyTier `json:"loyalty_tier"`
	DiscountBps     uint64      `json:"discount_bps"`
	Discount        uint64      `json:"discount"`
	FinalFee        uint64      `json:"final_fee"`
	NetAmount       uint64      `json:"net_amount"`
	EffectiveFeeBps uint64      `json:"effective_fee_bps"`
	TransferCount   uint64      `json:"user_transfer_count"`
	TotalVolume     uint64      `json:"user_total_volume"`
}

// Stats mirrors the hook's global configuration counters.
type Stats struct {
	TotalTransfers     uint64 `json:"total_transfers"`
	TotalVolume        uint64 `json:"total_volume"`
	TotalFeesCollected uint64 `json:"total_fees_collected"`
	Paused             bool   `json:"is_paused"`
}
