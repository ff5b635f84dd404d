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
	"github.com/tessera-chain/tessera/x/gov/types"
	stakekeeper "github.com/tessera-chain/tessera/x/stake/keeper"
	staketypes "github.com/tessera-chain/tessera/x/stake/types"
)

var testGenesisTime = time.Unix(1600000000, 0).UTC()

// CreateTestInput builds a memdb-backed context with bank, stake and gov
// keepers, with the vote-decay upgrade active from genesis.
func CreateTestInput(t *testing.T) (sdk.Context, bank.Keeper, stakekeeper.Keeper, Keeper) {
	keyBank := sdk.NewKVStoreKey("bank")
	keyStake := sdk.NewKVStoreKey("stake")
	keyGov := sdk.NewKVStoreKey("gov")

	ms := store.NewCommitMultiStore(dbm.NewMemDB())
	ms.MountStore(keyBank)
	ms.MountStore(keyStake)
	ms.MountStore(keyGov)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	ctx := sdk.NewContext(ms, 1, testGenesisTime, log.NewNopLogger())

	ck := bank.NewKeeper(cdc, keyBank, bank.DefaultCodespace)
	sk := stakekeeper.NewKeeper(cdc, keyStake, ck, staketypes.DefaultCodespace)
	sk.SetParams(ctx, staketypes.DefaultParams())
	gk := NewKeeper(cdc, keyGov, sk, types.DefaultCodespace)

	params := types.DefaultParams()
	params.PeriodStart = testGenesisTime
	gk.SetParams(ctx, params)

	sdk.ResetUpgradeMgr()
	sdk.SetUpgradeTime(sdk.VoteDecayUpgrade, testGenesisTime)
	return ctx, ck, sk, gk
}

// fundAndLock gives the account a liquid balance and locks part of it.
func fundAndLock(t *testing.T, ctx sdk.Context, ck bank.Keeper, sk stakekeeper.Keeper, owner sdk.AccountID, amount int64) {
	_, err := ck.AddCoins(ctx, owner, sdk.NewCoin(sk.BondDenom(ctx), amount))
	require.Nil(t, err)
	_, err = sk.LockStake(ctx, owner, amount)
	require.Nil(t, err)
}
