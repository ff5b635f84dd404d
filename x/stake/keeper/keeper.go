package keeper

import (
	"encoding/binary"
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/tessera-chain/tessera/codec"
	"github.com/tessera-chain/tessera/pubsub"
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/bank"
	"github.com/tessera-chain/tessera/x/stake/types"
)

// Keeper is the vesting ledger: it owns the governance-tagged stake records
// and the pool account holding the locked tokens.
type Keeper struct {
	storeKey   sdk.StoreKey
	cdc        *codec.Codec
	bankKeeper bank.Keeper
	codespace  sdk.CodespaceType

	PbsbServer *pubsub.Publisher
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, ck bank.Keeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:   key,
		cdc:        cdc,
		bankKeeper: ck,
		codespace:  codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/stake")
}

func (k Keeper) Codespace() sdk.CodespaceType { return k.codespace }

// SetupPubsub attaches the event publisher.
func (k *Keeper) SetupPubsub(server *pubsub.Publisher) {
	k.PbsbServer = server
}

// GetParams loads the stake params, falling back to defaults before genesis
// has written them.
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

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) {
	store := ctx.KVStore(k.storeKey)
	store.Set(ParamsKey, k.cdc.MustMarshalBinaryLengthPrefixed(params))
}

// BondDenom is the denomination locked for governance participation.
func (k Keeper) BondDenom(ctx sdk.Context) string {
	return k.GetParams(ctx).BondDenom
}

func (k Keeper) nextRecordID(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	var id uint64
	if bz := store.Get(NextRecordIDKey); bz != nil {
		id = binary.BigEndian.Uint64(bz)
	}
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id+1)
	store.Set(NextRecordIDKey, bz)
	return id
}

// LockStake moves amount from the owner's liquid balance into a new
// governance-tagged stake record.
func (k Keeper) LockStake(ctx sdk.Context, owner sdk.AccountID, amount int64) (types.StakeRecord, sdk.Error) {
	if amount <= 0 {
		return types.StakeRecord{}, types.ErrInvalidStakeAmount(k.codespace,
			fmt.Sprintf("stake amount must be positive, got %d", amount))
	}
	coin := sdk.NewCoin(k.BondDenom(ctx), amount)
	if err := k.bankKeeper.SendCoins(ctx, owner, StakePoolAccountID, coin); err != nil {
		return types.StakeRecord{}, err
	}

	record := types.StakeRecord{
		ID:     k.nextRecordID(ctx),
		Owner:  owner,
		Amount: amount,
	}
	store := ctx.KVStore(k.storeKey)
	store.Set(GetStakeRecordKey(owner, record.ID), k.cdc.MustMarshalBinaryLengthPrefixed(record))

	if k.PbsbServer != nil {
		k.PbsbServer.Publish(types.StakeLockedEvent{Record: record})
	}
	return record, nil
}

// UnlockStake releases a record back to the owner's liquid balance. The
// coin-age policy governing when an unlock is allowed lives outside this
// module; callers are expected to have enforced it.
func (k Keeper) UnlockStake(ctx sdk.Context, owner sdk.AccountID, recordID uint64) sdk.Error {
	store := ctx.KVStore(k.storeKey)
	key := GetStakeRecordKey(owner, recordID)
	bz := store.Get(key)
	if bz == nil {
		return types.ErrStakeNotFound(k.codespace,
			fmt.Sprintf("no stake record %d for %s", recordID, owner))
	}
	var record types.StakeRecord
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &record)

	coin := sdk.NewCoin(k.BondDenom(ctx), record.Amount)
	if err := k.bankKeeper.SendCoins(ctx, StakePoolAccountID, owner, coin); err != nil {
		return err
	}
	store.Delete(key)

	if k.PbsbServer != nil {
		k.PbsbServer.Publish(types.StakeUnlockedEvent{Record: record})
	}
	return nil
}

// SetStakeRecord stores a record directly, bypassing the bank transfer.
// Genesis only; runtime locking goes through LockStake.
func (k Keeper) SetStakeRecord(ctx sdk.Context, record types.StakeRecord) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetStakeRecordKey(record.Owner, record.ID), k.cdc.MustMarshalBinaryLengthPrefixed(record))
}

// SetNextRecordID seeds the record id counter. Genesis only.
func (k Keeper) SetNextRecordID(ctx sdk.Context, id uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, id)
	store.Set(NextRecordIDKey, bz)
}

// GetAllStakeRecords returns every record across owners, ascending by owner
// then record id.
func (k Keeper) GetAllStakeRecords(ctx sdk.Context) []types.StakeRecord {
	var records []types.StakeRecord
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, StakeRecordKey)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var record types.StakeRecord
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &record)
		records = append(records, record)
	}
	return records
}

// GetStakeRecord loads one record.
func (k Keeper) GetStakeRecord(ctx sdk.Context, owner sdk.AccountID, recordID uint64) (types.StakeRecord, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetStakeRecordKey(owner, recordID))
	if bz == nil {
		return types.StakeRecord{}, false
	}
	var record types.StakeRecord
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &record)
	return record, true
}

// StakedAmount sums the active records of one owner.
func (k Keeper) StakedAmount(ctx sdk.Context, owner sdk.AccountID) (int64, sdk.Error) {
	var total int64
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, GetStakeRecordsKey(owner))
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var record types.StakeRecord
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &record)
		var ok bool
		if total, ok = sdk.Add64(total, record.Amount); !ok {
			return 0, types.ErrStakeOverflow(k.codespace,
				fmt.Sprintf("stake sum overflow for %s", owner))
		}
	}
	return total, nil
}

// ActiveStakes returns the per-owner aggregate of every active record, in
// ascending owner id order. This is the snapshot both the tally and the
// dividend split consume at a maintenance tick.
func (k Keeper) ActiveStakes(ctx sdk.Context) ([]types.StakeEntry, sdk.Error) {
	var entries []types.StakeEntry
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, StakeRecordKey)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var record types.StakeRecord
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &record)
		n := len(entries)
		if n > 0 && entries[n-1].Owner == record.Owner {
			sum, ok := sdk.Add64(entries[n-1].Amount, record.Amount)
			if !ok {
				return nil, types.ErrStakeOverflow(k.codespace,
					fmt.Sprintf("stake sum overflow for %s", record.Owner))
			}
			entries[n-1].Amount = sum
			continue
		}
		entries = append(entries, types.StakeEntry{Owner: record.Owner, Amount: record.Amount})
	}
	return entries, nil
}

// TotalStaked sums all active records across owners.
func (k Keeper) TotalStaked(ctx sdk.Context) (int64, sdk.Error) {
	entries, err := k.ActiveStakes(ctx)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, entry := range entries {
		var ok bool
		if total, ok = sdk.Add64(total, entry.Amount); !ok {
			return 0, types.ErrStakeOverflow(k.codespace, "total stake overflow")
		}
	}
	return total, nil
}
