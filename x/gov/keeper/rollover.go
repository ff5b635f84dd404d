package keeper

import (
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/types"
)

// AdvancePeriod rolls the governance window forward once it has fully
// elapsed: if blockTime >= period_start + vesting_period, period_start is
// realigned to blockTime itself rather than stepped by whole periods, so a
// late maintenance tick starts the new window at the tick that observed the
// boundary. Calling it again with the same time is a no-op.
//
// It runs before the coefficient is computed, so a rollover at a tick
// boundary is visible to that same tick's tally (the coefficient resets to
// full weight in the same step).
func (k Keeper) AdvancePeriod(ctx sdk.Context) (bool, sdk.Error) {
	params := k.GetParams(ctx)
	if err := params.UpdateCheck(); err != nil {
		return false, types.ErrInvalidVestingConfig(k.codespace, err.Error())
	}

	now := ctx.BlockTime()
	if now.Before(params.PeriodStart.Add(params.VestingPeriod)) {
		return false, nil
	}

	params.PeriodStart = now
	k.SetParams(ctx, params)
	k.Logger(ctx).Info("governance period rolled over", "period_start", now)

	if k.PbsbServer != nil {
		k.PbsbServer.Publish(types.PeriodRolledOverEvent{NewPeriodStart: now})
	}
	return true, nil
}
