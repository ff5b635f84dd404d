package bank

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tessera-chain/tessera/codec"
	"github.com/tessera-chain/tessera/store"
	sdk "github.com/tessera-chain/tessera/types"
)

func createTestInput(t *testing.T) (sdk.Context, Keeper) {
	key := sdk.NewKVStoreKey("bank")
	ms := store.NewCommitMultiStore(dbm.NewMemDB())
	ms.MountStore(key)
	require.NoError(t, ms.LoadLatestVersion())

	ctx := sdk.NewContext(ms, 1, time.Unix(1600000000, 0), log.NewNopLogger())
	return ctx, NewKeeper(codec.New(), key, DefaultCodespace)
}

func TestKeeperAddSubtract(t *testing.T) {
	ctx, k := createTestInput(t)
	acc := sdk.AccountID(7)

	require.EqualValues(t, 0, k.GetCoins(ctx, acc).AmountOf("core"))

	coins, err := k.AddCoins(ctx, acc, sdk.NewCoin("core", 100))
	require.Nil(t, err)
	require.EqualValues(t, 100, coins.AmountOf("core"))

	coins, err = k.SubtractCoins(ctx, acc, sdk.NewCoin("core", 40))
	require.Nil(t, err)
	require.EqualValues(t, 60, coins.AmountOf("core"))

	_, err = k.SubtractCoins(ctx, acc, sdk.NewCoin("core", 61))
	require.NotNil(t, err)
	require.EqualValues(t, 60, k.GetCoins(ctx, acc).AmountOf("core"))
}

func TestKeeperAddCoinsOverflow(t *testing.T) {
	ctx, k := createTestInput(t)
	acc := sdk.AccountID(7)

	_, err := k.AddCoins(ctx, acc, sdk.NewCoin("core", math.MaxInt64))
	require.Nil(t, err)

	// the credit must fail loudly, never wrap the balance negative
	_, err = k.AddCoins(ctx, acc, sdk.NewCoin("core", 1))
	require.NotNil(t, err)
	require.EqualValues(t, sdk.CodeOverflow, err.Code())
	require.EqualValues(t, math.MaxInt64, k.GetCoins(ctx, acc).AmountOf("core"))
}

func TestKeeperSendCoins(t *testing.T) {
	ctx, k := createTestInput(t)
	from, to := sdk.AccountID(1), sdk.AccountID(2)

	_, err := k.AddCoins(ctx, from, sdk.NewCoin("core", 50))
	require.Nil(t, err)

	require.Nil(t, k.SendCoins(ctx, from, to, sdk.NewCoin("core", 20)))
	require.EqualValues(t, 30, k.GetCoins(ctx, from).AmountOf("core"))
	require.EqualValues(t, 20, k.GetCoins(ctx, to).AmountOf("core"))

	err = k.SendCoins(ctx, from, to, sdk.NewCoin("core", 31))
	require.NotNil(t, err)
	require.EqualValues(t, 30, k.GetCoins(ctx, from).AmountOf("core"))
	require.EqualValues(t, 20, k.GetCoins(ctx, to).AmountOf("core"))
}
