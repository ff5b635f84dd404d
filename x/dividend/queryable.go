package dividend

import (
	"github.com/tessera-chain/tessera/codec"
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/dividend/keeper"
)

// query endpoints supported by the dividend Querier
const (
	QueryAsset  = "asset"
	QueryAssets = "assets"
)

// QueryAssetParams selects one asset by denom.
type QueryAssetParams struct {
	Denom string `json:"denom"`
}

func NewQuerier(keeper keeper.Keeper, cdc *codec.Codec) sdk.Querier {
	return func(ctx sdk.Context, path []string, data []byte) (res []byte, err sdk.Error) {
		switch path[0] {
		case QueryAsset:
			var p QueryAssetParams
			if e := cdc.UnmarshalJSON(data, &p); e != nil {
				return nil, sdk.ErrInternal("invalid asset query: " + e.Error())
			}
			asset, found := keeper.GetAsset(ctx, p.Denom)
			if !found {
				return nil, sdk.ErrInternal("unknown dividend asset " + p.Denom)
			}
			return marshalJSON(cdc, asset)
		case QueryAssets:
			return marshalJSON(cdc, keeper.GetAllAssets(ctx))
		default:
			return nil, sdk.ErrInternal("unknown dividend query endpoint")
		}
	}
}

func marshalJSON(cdc *codec.Codec, value interface{}) ([]byte, sdk.Error) {
	bz, err := cdc.MarshalJSON(value)
	if err != nil {
		return nil, sdk.ErrInternal("marshal query response: " + err.Error())
	}
	return bz, nil
}
