package keeper

import (
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/tessera-chain/tessera/types"
)

func TestLockUnlockStake(t *testing.T) {
	ctx, ck, sk := CreateTestInput(t)
	owner := sdk.AccountID(10)

	_, err := ck.AddCoins(ctx, owner, sdk.NewCoin("core", 1000))
	require.Nil(t, err)

	record, err := sk.LockStake(ctx, owner, 100)
	require.Nil(t, err)
	require.EqualValues(t, 100, record.Amount)
	require.EqualValues(t, 900, ck.GetCoins(ctx, owner).AmountOf("core"))
	require.EqualValues(t, 100, ck.GetCoins(ctx, StakePoolAccountID).AmountOf("core"))

	staked, err := sk.StakedAmount(ctx, owner)
	require.Nil(t, err)
	require.EqualValues(t, 100, staked)

	require.Nil(t, sk.UnlockStake(ctx, owner, record.ID))
	require.EqualValues(t, 1000, ck.GetCoins(ctx, owner).AmountOf("core"))
	staked, err = sk.StakedAmount(ctx, owner)
	require.Nil(t, err)
	require.EqualValues(t, 0, staked)

	// double unlock
	require.NotNil(t, sk.UnlockStake(ctx, owner, record.ID))
}

func TestLockStakeValidation(t *testing.T) {
	ctx, ck, sk := CreateTestInput(t)
	owner := sdk.AccountID(10)

	_, err := sk.LockStake(ctx, owner, 0)
	require.NotNil(t, err)
	_, err = sk.LockStake(ctx, owner, -5)
	require.NotNil(t, err)

	// insufficient liquid balance
	_, err = ck.AddCoins(ctx, owner, sdk.NewCoin("core", 10))
	require.Nil(t, err)
	_, err = sk.LockStake(ctx, owner, 11)
	require.NotNil(t, err)
}

func TestActiveStakesAggregation(t *testing.T) {
	ctx, ck, sk := CreateTestInput(t)

	sam := sdk.AccountID(3)
	patty := sdk.AccountID(8)
	for _, id := range []sdk.AccountID{sam, patty} {
		_, err := ck.AddCoins(ctx, id, sdk.NewCoin("core", 1000))
		require.Nil(t, err)
	}

	// two records for sam, one for patty, locked out of id order
	_, err := sk.LockStake(ctx, patty, 100)
	require.Nil(t, err)
	_, err = sk.LockStake(ctx, sam, 200)
	require.Nil(t, err)
	_, err = sk.LockStake(ctx, sam, 100)
	require.Nil(t, err)

	entries, err := sk.ActiveStakes(ctx)
	require.Nil(t, err)
	require.Len(t, entries, 2)
	// ascending owner id, records aggregated per owner
	require.Equal(t, sam, entries[0].Owner)
	require.EqualValues(t, 300, entries[0].Amount)
	require.Equal(t, patty, entries[1].Owner)
	require.EqualValues(t, 100, entries[1].Amount)

	total, err := sk.TotalStaked(ctx)
	require.Nil(t, err)
	require.EqualValues(t, 400, total)
}
