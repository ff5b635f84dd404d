package keeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/dividend/types"
)

func TestDistributeProRata(t *testing.T) {
	ctx, ck, sk, dk := CreateTestInput(t)

	sam := sdk.AccountID(3)
	patty := sdk.AccountID(8)
	fundAndLock(t, ctx, ck, sk, sam, 300)
	fundAndLock(t, ctx, ck, sk, patty, 100)
	asset := testAsset(t, ctx, ck, dk, "divd", 100)

	require.Nil(t, dk.DistributeAll(ctx))

	require.EqualValues(t, 75, ck.GetCoins(ctx, sam).AmountOf("divd"))
	require.EqualValues(t, 25, ck.GetCoins(ctx, patty).AmountOf("divd"))
	require.EqualValues(t, 0, ck.GetCoins(ctx, asset.DistributionAccount).AmountOf("divd"))

	// the schedule rolled forward from the trigger instant
	updated, found := dk.GetAsset(ctx, "divd")
	require.True(t, found)
	require.Equal(t, testGenesisTime.Add(asset.Options.PayoutInterval), updated.Options.NextPayoutTime)
}

func TestDistributeRemainderStays(t *testing.T) {
	ctx, ck, sk, dk := CreateTestInput(t)

	// three equal stakers, balance 100: each gets floor(100/3) = 33 and the
	// remainder 1 stays in the distribution account for the next payout
	for _, id := range []sdk.AccountID{11, 12, 13} {
		fundAndLock(t, ctx, ck, sk, id, 50)
	}
	asset := testAsset(t, ctx, ck, dk, "divd", 100)

	require.Nil(t, dk.DistributeAll(ctx))

	for _, id := range []sdk.AccountID{11, 12, 13} {
		require.EqualValues(t, 33, ck.GetCoins(ctx, id).AmountOf("divd"))
	}
	require.EqualValues(t, 1, ck.GetCoins(ctx, asset.DistributionAccount).AmountOf("divd"))
}

func TestDistributeZeroStakers(t *testing.T) {
	ctx, ck, _, dk := CreateTestInput(t)

	asset := testAsset(t, ctx, ck, dk, "divd", 100)
	require.Nil(t, dk.DistributeAll(ctx))

	// no transfers, balance untouched, but the schedule still advances
	require.EqualValues(t, 100, ck.GetCoins(ctx, asset.DistributionAccount).AmountOf("divd"))
	updated, _ := dk.GetAsset(ctx, "divd")
	require.Equal(t, testGenesisTime.Add(asset.Options.PayoutInterval), updated.Options.NextPayoutTime)
}

func TestDistributeNotDue(t *testing.T) {
	ctx, ck, sk, dk := CreateTestInput(t)

	fundAndLock(t, ctx, ck, sk, sdk.AccountID(3), 300)
	asset := testAsset(t, ctx, ck, dk, "divd", 100)
	asset.Options.NextPayoutTime = testGenesisTime.Add(time.Hour)
	dk.SetAsset(ctx, asset)

	require.Nil(t, dk.DistributeAll(ctx))
	require.EqualValues(t, 100, ck.GetCoins(ctx, asset.DistributionAccount).AmountOf("divd"))
	require.EqualValues(t, 0, ck.GetCoins(ctx, sdk.AccountID(3)).AmountOf("divd"))

	// an hour later the asset is due
	require.Nil(t, dk.DistributeAll(ctx.WithBlockTime(testGenesisTime.Add(time.Hour))))
	require.EqualValues(t, 100, ck.GetCoins(ctx, sdk.AccountID(3)).AmountOf("divd"))
}

func TestDistributeMisconfiguredAssetIsolated(t *testing.T) {
	ctx, ck, sk, dk := CreateTestInput(t)

	fundAndLock(t, ctx, ck, sk, sdk.AccountID(3), 300)

	// the broken asset has no distribution account; the healthy one must
	// still pay out in the same tick
	broken := types.Asset{
		Denom:  "broken",
		Issuer: sdk.AccountID(100),
		Options: types.Options{
			PayoutInterval: 24 * time.Hour,
			NextPayoutTime: testGenesisTime,
		},
	}
	dk.SetAsset(ctx, broken)
	testAsset(t, ctx, ck, dk, "divd", 100)

	require.Nil(t, dk.DistributeAll(ctx))
	require.EqualValues(t, 100, ck.GetCoins(ctx, sdk.AccountID(3)).AmountOf("divd"))

	// the broken asset's schedule did not advance; it retries next tick
	stored, _ := dk.GetAsset(ctx, "broken")
	require.Equal(t, testGenesisTime, stored.Options.NextPayoutTime)
}

func TestDistributeConservation(t *testing.T) {
	ctx, ck, sk, dk := CreateTestInput(t)

	stakes := map[sdk.AccountID]int64{4: 7, 5: 13, 6: 29, 7: 51}
	for id, amount := range stakes {
		fundAndLock(t, ctx, ck, sk, id, amount)
	}
	asset := testAsset(t, ctx, ck, dk, "divd", 997)

	require.Nil(t, dk.DistributeAll(ctx))

	var paid int64
	for id := range stakes {
		paid += ck.GetCoins(ctx, id).AmountOf("divd")
	}
	remainder := ck.GetCoins(ctx, asset.DistributionAccount).AmountOf("divd")
	require.EqualValues(t, 997, paid+remainder)
	require.True(t, paid <= 997)
}

func TestDistributeLateTickNoCatchUp(t *testing.T) {
	ctx, ck, sk, dk := CreateTestInput(t)

	fundAndLock(t, ctx, ck, sk, sdk.AccountID(3), 300)
	asset := testAsset(t, ctx, ck, dk, "divd", 100)

	// the tick lands three intervals late; the next payout is one interval
	// from the tick, not from the missed boundaries
	late := testGenesisTime.Add(3 * asset.Options.PayoutInterval)
	require.Nil(t, dk.DistributeAll(ctx.WithBlockTime(late)))

	updated, _ := dk.GetAsset(ctx, "divd")
	require.Equal(t, late.Add(asset.Options.PayoutInterval), updated.Options.NextPayoutTime)
}

func TestUpdateOptions(t *testing.T) {
	ctx, ck, _, dk := CreateTestInput(t)

	asset := testAsset(t, ctx, ck, dk, "divd", 0)

	next := testGenesisTime.Add(48 * time.Hour)
	err := dk.UpdateOptions(ctx, asset.Issuer, "divd", types.Options{
		PayoutInterval: 24 * time.Hour,
		NextPayoutTime: next,
	})
	require.Nil(t, err)
	updated, _ := dk.GetAsset(ctx, "divd")
	require.Equal(t, next, updated.Options.NextPayoutTime)
	require.Equal(t, 24*time.Hour, updated.Options.PayoutInterval)

	// only the issuer may reschedule
	err = dk.UpdateOptions(ctx, sdk.AccountID(999), "divd", updated.Options)
	require.NotNil(t, err)
	require.EqualValues(t, types.CodeUnauthorizedIssuer, err.Code())

	// unknown asset
	err = dk.UpdateOptions(ctx, asset.Issuer, "nope", updated.Options)
	require.NotNil(t, err)
	require.EqualValues(t, types.CodeInvalidDividendAsset, err.Code())

	// invalid interval
	err = dk.UpdateOptions(ctx, asset.Issuer, "divd", types.Options{NextPayoutTime: next})
	require.NotNil(t, err)
	require.EqualValues(t, types.CodeInvalidDividendAsset, err.Code())
}
