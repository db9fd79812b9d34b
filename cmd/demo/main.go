// Package main runs a local walkthrough of the hook rules: a user's
// journey through the loyalty tiers, followed by a blacklist check.
// Everything runs in memory; no database or network is needed.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"versahook/internal/services/ledger"
	"versahook/internal/utils/format"
)

func main() {
	fmt.Println("Versa Transfer Hook - Local Simulator")
	fmt.Println("=====================================")

	ctx := context.Background()
	svc := ledger.NewService(nil, nil, nil)

	type step struct {
		description string
		fastForward uint64 // transfers to reach before this step
		amount      uint64
	}

	steps := []step{
		{"Initial small transfer", 0, 50_000_000},
		{"Growing confidence", 0, 500_000_000},
		{"Regular user (10th transfer)", 9, 1_000_000_000},
		{"More transfers...", 0, 2_000_000_000},
		{"Bronze achieved!", 0, 5_000_000_000},
		{"Silver milestone (50th)", 49, 10_000_000_000},
		{"Gold unlocked (100th)", 99, 50_000_000_000},
	}

	fmt.Println("\nUser journey for: alice")

	var count uint64
	for _, s := range steps {
		for count < s.fastForward {
			outcome, err := svc.SimulateTransfer(ctx, "alice", 1_000_000_000)
			if err != nil {
				log.Fatalf("fast-forward transfer failed: %v", err)
			}
			count = outcome.TransferCount
		}

		outcome, err := svc.SimulateTransfer(ctx, "alice", s.amount)
		if err != nil {
			log.Fatalf("transfer failed: %v", err)
		}
		count = outcome.TransferCount

		fmt.Printf("\nTransfer #%d: %s\n", outcome.TransferCount, s.description)
		fmt.Printf("  Amount:       %s tokens\n", format.Tokens(outcome.Amount))
		fmt.Printf("  Base fee tier: %s\n", format.Percent(outcome.FeeTierBps))
		fmt.Printf("  Loyalty tier:  %s\n", outcome.LoyaltyTier)
		if outcome.DiscountBps > 0 {
			fmt.Printf("  Discount:     -%s (%s tokens)\n", format.Percent(outcome.DiscountBps), format.Tokens(outcome.Discount))
		}
		fmt.Printf("  Final fee:     %s tokens (%s)\n", format.Tokens(outcome.FinalFee), format.Percent(outcome.EffectiveFeeBps))
		fmt.Printf("  Net received:  %s tokens\n", format.Tokens(outcome.NetAmount))
		fmt.Printf("  Total volume:  %s tokens\n", format.Tokens(outcome.TotalVolume))
	}

	state, err := svc.GetUserState(ctx, "alice")
	if err != nil {
		log.Fatalf("lookup failed: %v", err)
	}
	fmt.Println("\n=====================================")
	fmt.Println("Final state for alice:")
	fmt.Printf("  Total transfers: %d\n", state.TransferCount)
	fmt.Printf("  Total volume:    %s tokens\n", format.Tokens(state.TotalVolume))
	fmt.Printf("  Blacklisted:     %v\n", state.Blacklisted)

	fmt.Println("\nBlacklist check")
	outcome, err := svc.SimulateTransfer(ctx, "bob", 1_000_000_000)
	if err != nil {
		log.Fatalf("transfer failed: %v", err)
	}
	fmt.Printf("  bob's first transfer: %s tokens received\n", format.Tokens(outcome.NetAmount))

	if err := svc.BlacklistUser(ctx, "bob"); err != nil {
		log.Fatalf("blacklist failed: %v", err)
	}
	fmt.Println("  bob has been blacklisted")

	if _, err := svc.SimulateTransfer(ctx, "bob", 1_000_000_000); errors.Is(err, ledger.ErrUserBlacklisted) {
		fmt.Printf("  bob's second transfer blocked: %v\n", err)
	}

	stats := svc.Stats(ctx)
	fmt.Printf("\nGlobal stats: %d transfers, %s tokens volume, %s tokens fees\n",
		stats.TotalTransfers, format.Tokens(stats.TotalVolume), format.Tokens(stats.TotalFeesCollected))

	fmt.Println("\nSimulation complete")
}
