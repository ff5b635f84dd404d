package keeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tessera-chain/tessera/codec"
	"github.com/tessera-chain/tessera/store"
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/bank"
	"github.com/tessera-chain/tessera/x/dividend/types"
	stakekeeper "github.com/tessera-chain/tessera/x/stake/keeper"
	staketypes "github.com/tessera-chain/tessera/x/stake/types"
)

var testGenesisTime = time.Unix(1600000000, 0).UTC()

// CreateTestInput builds a memdb-backed context with bank, stake and dividend
// keepers.
func CreateTestInput(t *testing.T) (sdk.Context, bank.Keeper, stakekeeper.Keeper, Keeper) {
	keyBank := sdk.NewKVStoreKey("bank")
	keyStake := sdk.NewKVStoreKey("stake")
	keyDividend := sdk.NewKVStoreKey("dividend")

	ms := store.NewCommitMultiStore(dbm.NewMemDB())
	ms.MountStore(keyBank)
	ms.MountStore(keyStake)
	ms.MountStore(keyDividend)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	ctx := sdk.NewContext(ms, 1, testGenesisTime, log.NewNopLogger())

	ck := bank.NewKeeper(cdc, keyBank, bank.DefaultCodespace)
	sk := stakekeeper.NewKeeper(cdc, keyStake, ck, staketypes.DefaultCodespace)
	sk.SetParams(ctx, staketypes.DefaultParams())
	dk := NewKeeper(cdc, keyDividend, ck, sk, types.DefaultCodespace)
	return ctx, ck, sk, dk
}

// fundAndLock gives the account a liquid balance and locks it all.
func fundAndLock(t *testing.T, ctx sdk.Context, ck bank.Keeper, sk stakekeeper.Keeper, owner sdk.AccountID, amount int64) {
	_, err := ck.AddCoins(ctx, owner, sdk.NewCoin(sk.BondDenom(ctx), amount))
	require.Nil(t, err)
	_, err = sk.LockStake(ctx, owner, amount)
	require.Nil(t, err)
}

// testAsset registers a dividend asset due at genesis with a weekly schedule.
func testAsset(t *testing.T, ctx sdk.Context, ck bank.Keeper, dk Keeper, denom string, fund int64) types.Asset {
	asset := types.Asset{
		Denom:               denom,
		Issuer:              sdk.AccountID(100),
		DistributionAccount: sdk.AccountID(200),
		Options: types.Options{
			PayoutInterval: 7 * 24 * time.Hour,
			NextPayoutTime: testGenesisTime,
		},
	}
	dk.SetAsset(ctx, asset)
	if fund > 0 {
		_, err := ck.AddCoins(ctx, asset.DistributionAccount, sdk.NewCoin(denom, fund))
		require.Nil(t, err)
	}
	return asset
}
