package gov

import (
	sdk "github.com/tessera-chain/tessera/types"
	"github.com/tessera-chain/tessera/x/gov/keeper"
	"github.com/tessera-chain/tessera/x/gov/types"
)

// GenesisState - governance state that must be provided at genesis
type GenesisState struct {
	Params     types.Params          `json:"params"`
	Selections []types.VoteSelection `json:"selections"`
}

func NewGenesisState(params types.Params, selections []types.VoteSelection) GenesisState {
	return GenesisState{
		Params:     params,
		Selections: selections,
	}
}

func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params: types.DefaultParams(),
	}
}

// InitGenesis - store genesis parameters
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data GenesisState) {
	if err := data.Params.UpdateCheck(); err != nil {
		panic(err)
	}
	k.SetParams(ctx, data.Params)
	for _, selection := range data.Selections {
		k.SetVoteSelection(ctx, selection.Owner, selection.Targets)
	}
}

// WriteGenesis - output genesis parameters
func WriteGenesis(ctx sdk.Context, k keeper.Keeper) GenesisState {
	var selections []types.VoteSelection
	k.IterateVoteSelections(ctx, func(selection types.VoteSelection) bool {
		selections = append(selections, selection)
		return false
	})
	return GenesisState{
		Params:     k.GetParams(ctx),
		Selections: selections,
	}
}
