// Package feeschedule maps a transfer amount to its fee tier.
// All arithmetic is integer-exact so results match the on-chain
// program bit for bit.
package feeschedule

import "math/bits"

// Amounts are denominated in the token's smallest unit (9 decimals).
const (
	OneToken uint64 = 1_000_000_000

	Tier1Threshold = OneToken / 10 // 0.1 token
	Tier2Threshold = OneToken      // 1 token
	Tier3Threshold = 10 * OneToken // 10 tokens
)

// Fee basis points per tier (1 bp = 0.01%).
const (
	Tier1FeeBps uint64 = 100 // 1.00%
	Tier2FeeBps uint64 = 50  // 0.50%
	Tier3FeeBps uint64 = 25  // 0.25%
	Tier4FeeBps uint64 = 10  // 0.10%
)

// BpsDenominator converts basis points to a fraction.
const BpsDenominator uint64 = 10_000

// Evaluator selects a fee tier from a transfer amount. It is stateless;
// the tier depends only on the amount, never on user history.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// BaseFee returns the fee tier rate and the fee amount for a transfer.
// Tiers are half-open, contiguous and cover the whole uint64 range, so
// every amount (including 0) resolves to exactly one tier.
func (e *Evaluator) BaseFee(amount uint64) (feeBps, feeAmount uint64) {
	switch {
	case amount < Tier1Threshold:
		feeBps = Tier1FeeBps
	case amount < Tier2Threshold:
		feeBps = Tier2FeeBps
	case amount < Tier3Threshold:
		feeBps = Tier3FeeBps
	default:
		feeBps = Tier4FeeBps
	}
	return feeBps, ApplyBps(amount, feeBps)
}

// ApplyBps computes floor(amount * bps / 10000) without overflowing,
// matching the reference program's truncating u128 arithmetic.
func ApplyBps(amount, bps uint64) uint64 {
	hi, lo := bits.Mul64(amount, bps)
	q, _ := bits.Div64(hi, lo, BpsDenominator)
	return q
}

// RateBps computes floor(part * 10000 / whole), the effective rate of
// part relative to whole in basis points. whole must be non-zero; the
// caller owns any zero guard since that is a policy decision.
func RateBps(part, whole uint64) uint64 {
	hi, lo := bits.Mul64(part, BpsDenominator)
	q, _ := bits.Div64(hi, lo, whole)
	return q
}
