package gov

import (
	"github.com/tessera-chain/tessera/codec"
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/keeper"
	"github.com/tessera-chain/tessera/x/gov/types"
)

// query endpoints supported by the governance Querier
const (
	QueryParams    = "params"
	QueryTally     = "tally"
	QueryTallies   = "tallies"
	QuerySelection = "selection"
)

// QueryTallyParams selects one candidate.
type QueryTallyParams struct {
	Candidate types.CandidateID `json:"candidate"`
}

// QuerySelectionParams selects one account's vote selection.
type QuerySelectionParams struct {
	Owner sdk.AccountID `json:"owner"`
}

func NewQuerier(keeper keeper.Keeper, cdc *codec.Codec) sdk.Querier {
	return func(ctx sdk.Context, path []string, data []byte) (res []byte, err sdk.Error) {
		switch path[0] {
		case QueryParams:
			return marshalJSON(cdc, keeper.GetParams(ctx))
		case QueryTally:
			var p QueryTallyParams
			if e := cdc.UnmarshalJSON(data, &p); e != nil {
				return nil, sdk.ErrInternal("invalid tally query: " + e.Error())
			}
			return marshalJSON(cdc, keeper.GetTally(ctx, p.Candidate))
		case QueryTallies:
			return marshalJSON(cdc, keeper.GetAllTallies(ctx))
		case QuerySelection:
			var p QuerySelectionParams
			if e := cdc.UnmarshalJSON(data, &p); e != nil {
				return nil, sdk.ErrInternal("invalid selection query: " + e.Error())
			}
			return marshalJSON(cdc, keeper.GetVoteSelection(ctx, p.Owner))
		default:
			return nil, sdk.ErrInternal("unknown gov query endpoint")
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
