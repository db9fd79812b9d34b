// Package format renders smallest-unit amounts and basis-point rates
// for reports and logs. Integer arithmetic only, so the engine's exact
// values are never routed through floating point.
package format

import "fmt"

const (
	unitsPerToken  uint64 = 1_000_000_000
	displayDigits  uint64 = 10_000 // 4 fractional digits
	roundingOffset uint64 = unitsPerToken / displayDigits / 2
)

// Tokens renders a smallest-unit amount as a whole-token string with
// four decimal places, rounding the dropped digits half up.
func Tokens(amount uint64) string {
	whole := amount / unitsPerToken
	frac := (amount%unitsPerToken + roundingOffset) / (unitsPerToken / displayDigits)
	if frac >= displayDigits {
		whole++
		frac -= displayDigits
	}
	return fmt.Sprintf("%d.%04d", whole, frac)
}

// Percent renders basis points as a percentage with two decimal places
// (100 bps = "1.00%").
func Percent(bps uint64) string {
	return fmt.Sprintf("%d.%02d%%", bps/100, bps%100)
}
