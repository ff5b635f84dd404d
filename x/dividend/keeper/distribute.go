package keeper

import (
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/dividend/types"
)

// DistributeAll runs the dividend half of a maintenance tick: every
// registered asset whose schedule has come due pays out its distribution
// account's entire balance pro-rata by raw stake.
//
// Misconfigured assets are logged and skipped for this tick only; they never
// abort the tick or other assets' distributions. Arithmetic overflow does
// abort, like everywhere else in the tick.
func (k Keeper) DistributeAll(ctx sdk.Context) sdk.Error {
	now := ctx.BlockTime()
	for _, asset := range k.GetAllAssets(ctx) {
		if now.Before(asset.Options.NextPayoutTime) {
			continue
		}
		if err := asset.UpdateCheck(); err != nil {
			k.Logger(ctx).Error("skipping misconfigured dividend asset",
				"denom", asset.Denom, "err", err)
			if k.PbsbServer != nil {
				k.PbsbServer.Publish(types.AssetSkippedEvent{
					Denom:  asset.Denom,
					Reason: err.Error(),
				})
			}
			continue
		}
		if err := k.distribute(ctx, asset); err != nil {
			return err
		}
	}
	return nil
}

// distribute pays out one due asset and rolls its schedule forward from the
// trigger instant, so late ticks do not cause catch-up bursts.
func (k Keeper) distribute(ctx sdk.Context, asset types.Asset) sdk.Error {
	now := ctx.BlockTime()

	entries, err := k.stakeKeeper.ActiveStakes(ctx)
	if err != nil {
		return types.ErrDistributionOverflow(k.codespace, err.Error())
	}
	var totalStaked int64
	for _, entry := range entries {
		var ok bool
		if totalStaked, ok = sdk.Add64(totalStaked, entry.Amount); !ok {
			return types.ErrDistributionOverflow(k.codespace, "total stake overflow")
		}
	}

	balance := k.bankKeeper.GetCoins(ctx, asset.DistributionAccount).AmountOf(asset.Denom)

	var payouts []types.Payout
	var distributed int64
	if totalStaked > 0 && balance > 0 {
		if payouts, distributed, err = k.allocate(entries, balance, totalStaked); err != nil {
			return err
		}
		for _, payout := range payouts {
			coin := sdk.NewCoin(asset.Denom, payout.Amount)
			if serr := k.bankKeeper.SendCoins(ctx, asset.DistributionAccount, payout.Recipient, coin); serr != nil {
				return serr
			}
		}
	}

	// the schedule rolls forward even when there was nothing to pay; a due
	// asset with no stakers or an empty account simply waits for next time
	asset.Options.NextPayoutTime = now.Add(asset.Options.PayoutInterval)
	k.SetAsset(ctx, asset)

	k.Logger(ctx).Info("dividend distribution applied",
		"denom", asset.Denom, "distributed", distributed,
		"remainder", balance-distributed, "recipients", len(payouts),
		"next_payout_time", asset.Options.NextPayoutTime)

	if k.PbsbServer != nil {
		k.PbsbServer.Publish(types.DividendPaidEvent{
			Denom:          asset.Denom,
			Distributed:    distributed,
			Remainder:      balance - distributed,
			Payouts:        payouts,
			NextPayoutTime: asset.Options.NextPayoutTime,
		})
	}
	return nil
}
