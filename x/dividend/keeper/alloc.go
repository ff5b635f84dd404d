package keeper

import (
	"fmt"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/dividend/types"
	staketypes "github.com/tessera-chain/tessera/x/stake/types"
)

// allocate splits balance across the stakers pro-rata by raw staked amount:
// staker i receives floor(balance * s_i / S). The shortfall from flooring is
// NOT redistributed; it stays in the distribution account and rides into the
// next payout. Zero shares are dropped from the result.
//
// The caller guarantees totalStaked = Σ entries.Amount > 0.
func (k Keeper) allocate(entries []staketypes.StakeEntry, balance, totalStaked int64) ([]types.Payout, int64, sdk.Error) {
	var payouts []types.Payout
	var distributed int64
	for _, entry := range entries {
		share, ok := sdk.MulDiv64(balance, entry.Amount, totalStaked)
		if !ok {
			return nil, 0, types.ErrDistributionOverflow(k.codespace,
				fmt.Sprintf("payout overflow for %s", entry.Owner))
		}
		if share == 0 {
			continue
		}
		if distributed, ok = sdk.Add64(distributed, share); !ok {
			return nil, 0, types.ErrDistributionOverflow(k.codespace, "distribution sum overflow")
		}
		payouts = append(payouts, types.Payout{Recipient: entry.Owner, Amount: share})
	}
	return payouts, distributed, nil
}
