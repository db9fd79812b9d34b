package ledger

// TierForCount maps a lifetime transfer count to a loyalty tier.
// Thresholds are contiguous and monotonic: counts below 10 earn no
// discount, 10-49 Bronze, 50-99 Silver, 100 and above Gold.
func TierForCount(count uint64) LoyaltyTier {
	switch {
	case count >= GoldThreshold:
		return TierGold
	case count >= SilverThreshold:
		return TierSilver
	case count >= BronzeThreshold:
		return TierBronze
	default:
		return TierNone
	}
}
