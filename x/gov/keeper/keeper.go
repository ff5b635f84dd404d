package keeper

import (
	"github.com/tendermint/tendermint/libs/log"

	"github.com/tessera-chain/tessera/codec"
	"github.com/tessera-chain/tessera/pubsub"
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/types"
	stakekeeper "github.com/tessera-chain/tessera/x/stake/keeper"
)

// Keeper of the governance store: period parameters, vote selections and the
// candidate tallies recomputed at every maintenance tick.
type Keeper struct {
	storeKey    sdk.StoreKey
	cdc         *codec.Codec
	stakeKeeper stakekeeper.Keeper
	codespace   sdk.CodespaceType

	PbsbServer *pubsub.Publisher
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, sk stakekeeper.Keeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:    key,
		cdc:         cdc,
		stakeKeeper: sk,
		codespace:   codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/gov")
}

func (k Keeper) Codespace() sdk.CodespaceType { return k.codespace }

// SetupPubsub attaches the event publisher.
func (k *Keeper) SetupPubsub(server *pubsub.Publisher) {
	k.PbsbServer = server
}

//_______________________________________________________________________

// GetParams loads the governance period parameters.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.Params
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &params)
	return params
}

// SetParams stores the governance period parameters. Besides genesis this is
// reached only by the privileged parameter-update path and by the rollover
// rewriting PeriodStart.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	store.Set(ParamsKey, k.cdc.MustMarshalBinaryLengthPrefixed(params))
}

//_______________________________________________________________________

// SetVoteSelection overwrites the account's governance targets wholesale.
// Targets are stored sorted and deduplicated; an empty selection clears the
// entry.
func (k Keeper) SetVoteSelection(ctx sdk.Context, owner sdk.AccountID, targets []types.CandidateID) {
	store := ctx.KVStore(k.storeKey)
	if len(targets) == 0 {
		store.Delete(GetVoteSelectionKey(owner))
		return
	}
	selection := types.VoteSelection{
		Owner:   owner,
		Targets: types.SortCandidateIDs(targets),
	}
	store.Set(GetVoteSelectionKey(owner), k.cdc.MustMarshalBinaryLengthPrefixed(selection))
}

// GetVoteSelection returns the account's current selection, empty if none.
func (k Keeper) GetVoteSelection(ctx sdk.Context, owner sdk.AccountID) types.VoteSelection {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetVoteSelectionKey(owner))
	if bz == nil {
		return types.VoteSelection{Owner: owner}
	}
	var selection types.VoteSelection
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &selection)
	return selection
}

// IterateVoteSelections visits every stored selection in ascending owner id
// order. The callback returning true stops the iteration.
func (k Keeper) IterateVoteSelections(ctx sdk.Context, fn func(types.VoteSelection) bool) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, VoteSelectionKey)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var selection types.VoteSelection
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &selection)
		if fn(selection) {
			return
		}
	}
}

//_______________________________________________________________________

// GetTally returns a candidate's total as of the last tick, zero if the
// candidate received no votes then.
func (k Keeper) GetTally(ctx sdk.Context, candidate types.CandidateID) types.CandidateTally {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetTallyKey(candidate))
	if bz == nil {
		return types.CandidateTally{Candidate: candidate}
	}
	var tally types.CandidateTally
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &tally)
	return tally
}

// GetAllTallies returns every stored tally in candidate id order.
func (k Keeper) GetAllTallies(ctx sdk.Context) []types.CandidateTally {
	var tallies []types.CandidateTally
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, TallyKey)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var tally types.CandidateTally
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &tally)
		tallies = append(tallies, tally)
	}
	return tallies
}

func (k Keeper) setTally(ctx sdk.Context, tally types.CandidateTally) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetTallyKey(tally.Candidate), k.cdc.MustMarshalBinaryLengthPrefixed(tally))
}

// clearTallies removes every stored tally before an overwrite.
func (k Keeper) clearTallies(ctx sdk.Context) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, TallyKey)
	var keys [][]byte
	for ; iterator.Valid(); iterator.Next() {
		keys = append(keys, iterator.Key())
	}
	iterator.Close()
	for _, key := range keys {
		store.Delete(key)
	}
}
