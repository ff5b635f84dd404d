package keeper

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/tessera-chain/tessera/codec"
	"github.com/tessera-chain/tessera/pubsub"
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/bank"
	"github.com/tessera-chain/tessera/x/dividend/types"
	stakekeeper "github.com/tessera-chain/tessera/x/stake/keeper"
)

// Keeper owns the dividend asset registry and drives the pro-rata
// distributions at each maintenance tick.
type Keeper struct {
	storeKey    sdk.StoreKey
	cdc         *codec.Codec
	bankKeeper  bank.Keeper
	stakeKeeper stakekeeper.Keeper
	codespace   sdk.CodespaceType

	PbsbServer *pubsub.Publisher
}

func NewKeeper(cdc *codec.Codec, key sdk.StoreKey, ck bank.Keeper, sk stakekeeper.Keeper, codespace sdk.CodespaceType) Keeper {
	return Keeper{
		storeKey:    key,
		cdc:         cdc,
		bankKeeper:  ck,
		stakeKeeper: sk,
		codespace:   codespace,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/dividend")
}

func (k Keeper) Codespace() sdk.CodespaceType { return k.codespace }

// SetupPubsub attaches the event publisher.
func (k *Keeper) SetupPubsub(server *pubsub.Publisher) {
	k.PbsbServer = server
}

//_______________________________________________________________________

// SetAsset registers or replaces a dividend asset. Validation is the
// caller's business: genesis panics on a bad asset, the msg handler rejects
// it, and the distributor skips whatever slipped through.
func (k Keeper) SetAsset(ctx sdk.Context, asset types.Asset) {
	store := ctx.KVStore(k.storeKey)
	store.Set(GetAssetKey(asset.Denom), k.cdc.MustMarshalBinaryLengthPrefixed(asset))
}

// GetAsset loads one asset by denom.
func (k Keeper) GetAsset(ctx sdk.Context, denom string) (types.Asset, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(GetAssetKey(denom))
	if bz == nil {
		return types.Asset{}, false
	}
	var asset types.Asset
	k.cdc.MustUnmarshalBinaryLengthPrefixed(bz, &asset)
	return asset, true
}

// GetAllAssets returns every registered asset in ascending denom order.
func (k Keeper) GetAllAssets(ctx sdk.Context) []types.Asset {
	var assets []types.Asset
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, AssetKey)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var asset types.Asset
		k.cdc.MustUnmarshalBinaryLengthPrefixed(iterator.Value(), &asset)
		assets = append(assets, asset)
	}
	return assets
}

// UpdateOptions applies an issuer's reschedule to an existing asset.
func (k Keeper) UpdateOptions(ctx sdk.Context, issuer sdk.AccountID, denom string, options types.Options) sdk.Error {
	asset, found := k.GetAsset(ctx, denom)
	if !found {
		return types.ErrInvalidDividendAsset(k.codespace,
			fmt.Sprintf("no dividend asset %s", denom))
	}
	if asset.Issuer != issuer {
		return types.ErrUnauthorizedIssuer(k.codespace,
			fmt.Sprintf("%s is not the issuer of %s", issuer, denom))
	}
	if err := options.UpdateCheck(); err != nil {
		return types.ErrInvalidDividendAsset(k.codespace, err.Error())
	}
	asset.Options = options
	k.SetAsset(ctx, asset)
	return nil
}
