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
	"github.com/tessera-chain/tessera/x/stake/types"
)

// CreateTestInput builds a memdb-backed context with a bank and stake keeper.
func CreateTestInput(t *testing.T) (sdk.Context, bank.Keeper, Keeper) {
	keyBank := sdk.NewKVStoreKey("bank")
	keyStake := sdk.NewKVStoreKey("stake")

	ms := store.NewCommitMultiStore(dbm.NewMemDB())
	ms.MountStore(keyBank)
	ms.MountStore(keyStake)
	require.NoError(t, ms.LoadLatestVersion())

	cdc := codec.New()
	ctx := sdk.NewContext(ms, 1, time.Unix(1600000000, 0), log.NewNopLogger())

	ck := bank.NewKeeper(cdc, keyBank, bank.DefaultCodespace)
	sk := NewKeeper(cdc, keyStake, ck, types.DefaultCodespace)
	sk.SetParams(ctx, types.DefaultParams())
	return ctx, ck, sk
}
