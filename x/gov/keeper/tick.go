package keeper

import (
	"time"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/types"
)

// EndBreatheBlock runs the governance half of a maintenance tick: rollover
// check, coefficient computation, then the full re-tally. Before the
// vote-decay activation time votes are tallied at full nominal weight and
// the window does not roll.
//
// A returned error means the tick must not commit; the caller discards all
// buffered writes by rejecting the enclosing block.
func (k Keeper) EndBreatheBlock(ctx sdk.Context) ([]types.CandidateTally, sdk.Error) {
	now := ctx.BlockTime()

	coef := types.FullWeight()
	if sdk.IsUpgradeActive(sdk.VoteDecayUpgrade, now) {
		if _, err := k.AdvancePeriod(ctx); err != nil {
			return nil, err
		}
		c, err := types.CoefficientAt(now, k.GetParams(ctx))
		if err != nil {
			return nil, types.ErrInvalidVestingConfig(k.codespace, err.Error())
		}
		coef = c
	}

	tallies, err := k.Retally(ctx, coef)
	if err != nil {
		return nil, err
	}
	k.setLastTallyTime(ctx, now)

	k.Logger(ctx).Info("maintenance tally applied",
		"coefficient", coef.String(), "candidates", len(tallies))

	if k.PbsbServer != nil {
		k.PbsbServer.Publish(types.TallyUpdatedEvent{
			BlockHeight: ctx.BlockHeight(),
			Coefficient: coef,
			Tallies:     tallies,
		})
	}
	return tallies, nil
}

func (k Keeper) setLastTallyTime(ctx sdk.Context, now time.Time) {
	store := ctx.KVStore(k.storeKey)
	store.Set(LastTallyTimeKey, k.cdc.MustMarshalBinaryLengthPrefixed(now.Unix()))
}

// GetLastTallyTime returns the unix time of the last applied tally, zero if
// none has run yet.
func (k Keeper) GetLastTallyTime(ctx sdk.Context) int64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(LastTallyTimeKey)
	if bz == nil {
		return 0
	}
	var unix int64
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &unix)
	return unix
}
