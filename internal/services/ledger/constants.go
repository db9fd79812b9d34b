package ledger

import "time"

// Loyalty tier thresholds, in lifetime transfer count.
const (
	BronzeThreshold uint64 = 10
	SilverThreshold uint64 = 50
	GoldThreshold   uint64 = 100
)

// Loyalty discounts per tier, in basis points.
const (
	BronzeDiscountBps uint64 = 10 // 0.10%
	SilverDiscountBps uint64 = 25 // 0.25%
	GoldDiscountBps   uint64 = 50 // 0.50%
)

// Cache keys and durations
const (
	UserCachePrefix = "hookuser:"
	CacheDuration   = 5 * time.Minute
)
